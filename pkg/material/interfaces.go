package material

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Material holds the Phong reflectance coefficients of a surface.
// Every color channel lies in [0, 1]; Shininess is the specular exponent.
// Materials are shared by value across every point of a surface.
type Material struct {
	Ambient   core.Vec3
	Diffuse   core.Vec3
	Specular  core.Vec3
	Shininess float64
}

// NewMaterial creates a material, rejecting out-of-range coefficients
func NewMaterial(ambient, diffuse, specular core.Vec3, shininess float64) (Material, error) {
	for name, c := range map[string]core.Vec3{"ambient": ambient, "diffuse": diffuse, "specular": specular} {
		if !inUnitRange(c) {
			return Material{}, fmt.Errorf("%s color %v must have channels in [0, 1]", name, c)
		}
	}
	if shininess < 0 {
		return Material{}, fmt.Errorf("shininess must be non-negative, got %f", shininess)
	}
	return Material{Ambient: ambient, Diffuse: diffuse, Specular: specular, Shininess: shininess}, nil
}

// NewSolidMaterial derives a material from a single base color.
// Ambient is a fifth of the base color and specular is a dim white.
func NewSolidMaterial(color core.Vec3, shininess float64) Material {
	return Material{
		Ambient:   color.Multiply(0.2),
		Diffuse:   color,
		Specular:  core.NewVec3(0.3, 0.3, 0.3),
		Shininess: shininess,
	}
}

// Texture provides a color for normalized texture coordinates.
// The texture owns its out-of-range policy.
type Texture interface {
	PixelUV(u, v float64) core.Vec3
}

func inUnitRange(c core.Vec3) bool {
	return c.X >= 0 && c.X <= 1 && c.Y >= 0 && c.Y <= 1 && c.Z >= 0 && c.Z <= 1
}
