package material

import (
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// TestImageTexturePixelUV tests basic texture sampling
func TestImageTexturePixelUV(t *testing.T) {
	// Create a 2x2 checkerboard pattern
	// Layout:
	//   white black
	//   black white
	pixels := []core.Vec3{
		core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), // Row 0 (top in image coords)
		core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), // Row 1 (bottom in image coords)
	}
	texture, err := NewImageTexture(2, 2, pixels)
	if err != nil {
		t.Fatalf("NewImageTexture returned error: %v", err)
	}

	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"bottom-left", 0.1, 0.1, black},
		{"bottom-right", 0.9, 0.1, white},
		{"top-left", 0.1, 0.9, white},
		{"top-right", 0.9, 0.9, black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := texture.PixelUV(tt.u, tt.v)
			if !result.Equals(tt.expected) {
				t.Errorf("UV(%v,%v): expected %v, got %v", tt.u, tt.v, tt.expected, result)
			}
		})
	}
}

// TestImageTextureWrapping tests UV wrapping behavior
func TestImageTextureWrapping(t *testing.T) {
	texture := NewCheckerboardTexture(4, 4, 2, core.Red, core.Blue)

	testCases := [][2]float64{
		{0.25, 0.25},
		{1.25, 0.25},
		{0.25, 1.25},
		{-0.75, -0.75},
		{3.25, 7.25},
	}

	expected := texture.PixelUV(0.25, 0.25)
	for _, uv := range testCases {
		result := texture.PixelUV(uv[0], uv[1])
		if !result.Equals(expected) {
			t.Errorf("UV%v: expected %v, got %v", uv, expected, result)
		}
	}

	// Exactly 1.0 wraps to the start of the texture
	if !texture.PixelUV(1.0, 1.0).Equals(texture.PixelUV(0, 0)) {
		t.Errorf("UV(1,1) should wrap to UV(0,0)")
	}
}

func TestNewImageTexture_Invalid(t *testing.T) {
	if _, err := NewImageTexture(0, 2, nil); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := NewImageTexture(2, 2, make([]core.Vec3, 3)); err == nil {
		t.Error("Expected error for pixel count mismatch")
	}
}

func TestFlagTexture_HasCantonAndStripes(t *testing.T) {
	flag := NewFlagTexture(130, 70)

	// Upper-left is the canton, lower-right is a stripe
	canton := flag.PixelUV(0.01, 0.99)
	stripe := flag.PixelUV(0.99, 0.01)
	if canton.Equals(stripe) {
		t.Errorf("Expected canton and stripe colors to differ, both %v", canton)
	}
}

func TestNewMaterial_Validation(t *testing.T) {
	if _, err := NewMaterial(core.NewVec3(1.5, 0, 0), core.Black, core.Black, 1); err == nil {
		t.Error("Expected error for ambient channel above 1")
	}
	if _, err := NewMaterial(core.Black, core.Black, core.Black, -1); err == nil {
		t.Error("Expected error for negative shininess")
	}
	m, err := NewMaterial(core.Gray, core.Gray, core.White, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Shininess != 0 {
		t.Errorf("Expected shininess 0, got %f", m.Shininess)
	}
}

func TestNamedMaterials_InRange(t *testing.T) {
	for name, m := range named {
		if _, err := NewMaterial(m.Ambient, m.Diffuse, m.Specular, m.Shininess); err != nil {
			t.Errorf("Material %s is invalid: %v", name, err)
		}
	}
	if _, ok := Named("brass"); !ok {
		t.Error("Expected brass to be a named material")
	}
}
