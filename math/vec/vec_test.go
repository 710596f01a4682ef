package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	v := Vec3{2, 2, 1}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{2, 1, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{1, 2, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Add(NULL, v)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, NULL)
	if v != got {
		t.Errorf("Substracting a null vector changed the vector")
	}
	got = Sub(v, v)
	if got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
	v2 := Vec3{9, 7, 5}
	got = Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestScale(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := v.Scale(2)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("%v.Scale(2) = %v want %v", v, got, want)
	}
	got = v.Scale(0)
	if got != NULL {
		t.Errorf("%v.Scale(0) = %v want %v", v, got, NULL)
	}
}

func TestNormalize(t *testing.T) {
	got := NULL.Normalize()
	if got != NULL {
		t.Errorf("Normalizing the null vector did not return the null vector")
	}
	v := Vec3{0, 3, 0}
	got = v.Normalize()
	want := Vec3{0, 1, 0}
	if got != want {
		t.Errorf("%v.Normalize() = %v want %v", v, got, want)
	}
	v = Vec3{2, 2, 1}
	got = v.Normalize()
	if l := got.Length(); l < 0.9999 || l > 1.0001 {
		t.Errorf("%v.Normalize() has length %v", v, l)
	}
}

func TestDot(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	if got := Dot(a, b); got != 0 {
		t.Errorf("Dot(%v,%v) = %v want 0", a, b, got)
	}
	if got := Dot(a, a); got != 1 {
		t.Errorf("Dot(%v,%v) = %v want 1", a, a, got)
	}
	c := Vec3{1, 2, 3}
	d := Vec3{4, 5, 6}
	if got := Dot(c, d); got != 32 {
		t.Errorf("Dot(%v,%v) = %v want 32", c, d, got)
	}
}
