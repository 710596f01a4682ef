// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	cv := MustRegister("test_speed", "0.5")
	got, ok := Get("test_speed")
	if !ok || got != cv {
		t.Fatalf("Get(test_speed) = %v, %v", got, ok)
	}
	if cv.Value() != 0.5 {
		t.Errorf("Value() = %v want 0.5", cv.Value())
	}
	if _, err := Register("test_speed", "1"); err == nil {
		t.Error("double registration did not fail")
	}
}

func TestSetValue(t *testing.T) {
	cv := MustRegister("test_set", "0")
	cv.SetValue(20)
	if cv.String() != "20" {
		t.Errorf("String() = %q want 20", cv.String())
	}
	cv.SetValue(0.25)
	if cv.Value() != 0.25 {
		t.Errorf("Value() = %v want 0.25", cv.Value())
	}
}

func TestReset(t *testing.T) {
	cv := MustRegister("test_reset", "1.5")
	cv.SetValue(9)
	cv.Reset()
	if cv.Value() != 1.5 {
		t.Errorf("Value() after Reset = %v want 1.5", cv.Value())
	}
}

func TestCallback(t *testing.T) {
	cv := MustRegister("test_cb", "0")
	var seen float32 = -1
	cv.SetCallback(func(cv *Cvar) {
		seen = cv.Value()
	})
	cv.SetValue(3)
	if seen != 3 {
		t.Errorf("callback saw %v want 3", seen)
	}
}

func TestToggleBool(t *testing.T) {
	cv := MustRegister("test_toggle", "0")
	if cv.Bool() {
		t.Error("Bool() = true for 0")
	}
	cv.Toggle()
	if !cv.Bool() {
		t.Error("Bool() = false after toggle")
	}
	cv.Toggle()
	if cv.Bool() {
		t.Error("Bool() = true after second toggle")
	}
}
