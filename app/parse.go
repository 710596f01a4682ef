package app

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/clarkezyz/shac-sim/math/vec"
)

// ParseVec3 parses "x,y,z". All three components must parse before anything
// is returned, a partial vector is never produced.
func ParseVec3(s string) (vec.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vec.Vec3{}, errors.Errorf("expected x,y,z got %q", s)
	}
	var out [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return vec.Vec3{}, errors.Wrapf(err, "component %d of %q", i, s)
		}
		out[i] = float32(f)
	}
	return vec.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}
