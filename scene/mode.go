package scene

// FrameMode selects the reference frame used for screen projection and drag
// math. It never affects true world coordinates or audio spatialization.
type FrameMode int

const (
	// Composition anchors sources in world space, the listener moves
	// through them.
	Composition FrameMode = iota
	// Authoring renders the listener at the projection center, sources
	// relative to it.
	Authoring
)

func (m FrameMode) String() string {
	switch m {
	case Composition:
		return "composition"
	case Authoring:
		return "authoring"
	}
	return "unknown"
}

type ViewMode int

const (
	TopDown ViewMode = iota
	FirstPerson
)

func (m ViewMode) String() string {
	switch m {
	case TopDown:
		return "top-down"
	case FirstPerson:
		return "first-person"
	}
	return "unknown"
}
