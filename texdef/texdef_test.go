package texdef

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vec2ApproxEqual(a, b mgl64.Vec2, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance && math.Abs(a.Y()-b.Y()) < tolerance
}

func TestAxialBasis(t *testing.T) {
	tests := []struct {
		name   string
		normal mgl64.Vec3
		s, t   mgl64.Vec3
	}{
		{"floor", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, -1, 0}},
		{"ceiling", mgl64.Vec3{0, 0, -1}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, -1, 0}},
		{"west wall", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, -1}},
		{"north wall", mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}},
		{"diagonal prefers first axis", mgl64.Vec3{1, 1, 0}.Normalize(), mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, tv := AxialBasis(tt.normal)
			if s != tt.s || tv != tt.t {
				t.Errorf("AxialBasis(%v) = %v, %v; want %v, %v", tt.normal, s, tv, tt.s, tt.t)
			}
		})
	}
}

func TestEmit(t *testing.T) {
	normal := mgl64.Vec3{0, 0, 1}
	point := mgl64.Vec3{32, -64, 0}

	tests := []struct {
		name       string
		projection Projection
		expected   mgl64.Vec2
	}{
		{"default", DefaultProjection(), mgl64.Vec2{1, 2}},
		{"shifted", Projection{Shift: mgl64.Vec2{16, 0}, Scale: mgl64.Vec2{0.5, 0.5}}, mgl64.Vec2{1.25, 2}},
		{"unit scale", Projection{Scale: mgl64.Vec2{1, 1}}, mgl64.Vec2{0.5, 1}},
		{"rotated", Projection{Scale: mgl64.Vec2{0.5, 0.5}, Rotate: 90}, mgl64.Vec2{2, -1}},
		{"zero scale falls back", Projection{}, mgl64.Vec2{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.projection.Emit(normal, point, 64, 64)
			if !vec2ApproxEqual(got, tt.expected, 1e-9) {
				t.Errorf("Emit = %v, want %v", got, tt.expected)
			}
			emitter := tt.projection.NewEmitter(normal, 64, 64)
			if !vec2ApproxEqual(emitter.Emit(point), got, 1e-12) {
				t.Errorf("Emitter disagrees with Emit")
			}
		})
	}
}

func TestProjectionValidAndNormalise(t *testing.T) {
	if !DefaultProjection().Valid() {
		t.Errorf("default projection should be valid")
	}
	if (Projection{Scale: mgl64.Vec2{1, 0}}).Valid() {
		t.Errorf("zero scale should be invalid")
	}

	p := Projection{Shift: mgl64.Vec2{130, -70}, Scale: mgl64.Vec2{1, 1}}
	p.Normalise(64, 64)
	if p.Shift != (mgl64.Vec2{2, -6}) {
		t.Errorf("Normalise shift = %v, want (2,-6)", p.Shift)
	}
}

func TestShader(t *testing.T) {
	s := NewShader("")
	if !s.IsDefault() {
		t.Errorf("empty name should map to the default shader")
	}
	if w, h := s.Size(); w != DefaultTextureSize || h != DefaultTextureSize {
		t.Errorf("Size() = %v x %v, want default", w, h)
	}

	s = Shader{Name: "textures/base_wall/concrete", Width: 256, Height: 128, Flags: FlagDetail | FlagNoDraw}
	if s.IsDefault() {
		t.Errorf("named shader should not be default")
	}
	if w, h := s.Size(); w != 256 || h != 128 {
		t.Errorf("Size() = %v x %v, want 256 x 128", w, h)
	}
	if !s.Has(FlagDetail) || !s.Has(FlagNoDraw) || s.Has(FlagTranslucent) {
		t.Errorf("flags = %b", s.Flags)
	}
}
