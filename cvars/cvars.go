// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"github.com/clarkezyz/shac-sim/cvar"
)

var (
	FetchURL       *cvar.Cvar
	ForwardSpeed   *cvar.Cvar
	MasterVolume   *cvar.Cvar
	MovementRadius *cvar.Cvar
	Sensitivity    *cvar.Cvar
	SideSpeed      *cvar.Cvar
	UpSpeed        *cvar.Cvar
	ViewScale      *cvar.Cvar
)

func init() {
	FetchURL = cvar.MustRegister("fetch_url", "http://localhost:8000")
	ForwardSpeed = cvar.MustRegister("cl_forwardspeed", "0.5")
	MasterVolume = cvar.MustRegister("volume", "1")
	MovementRadius = cvar.MustRegister("cl_radius", "20")
	Sensitivity = cvar.MustRegister("sensitivity", "0.2")
	SideSpeed = cvar.MustRegister("cl_sidespeed", "0.5")
	UpSpeed = cvar.MustRegister("cl_upspeed", "0.5")
	ViewScale = cvar.MustRegister("viewscale", "20")
}
