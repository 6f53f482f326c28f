package lights

import (
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// AmbientColor is the ambient term, clamped to [0,1]
func AmbientColor(matAmbient, lightColor core.Vec3) core.Vec3 {
	return matAmbient.MultiplyVec(lightColor).Clamp(0, 1)
}

// DiffuseColor is the Lambertian term for unit vectors l (to the light) and n, clamped to [0,1].
// Surfaces facing away from the light get black.
func DiffuseColor(matDiffuse, lightColor, l, n core.Vec3) core.Vec3 {
	return matDiffuse.MultiplyVec(lightColor).Multiply(math.Max(0, l.Dot(n))).Clamp(0, 1)
}

// SpecularColor is the Phong highlight for unit reflection r and view v, clamped to [0,1].
// It is exactly black when r and v point away from each other, whatever the shininess.
func SpecularColor(matSpecular, lightColor core.Vec3, shininess float64, r, v core.Vec3) core.Vec3 {
	dp := r.Dot(v)
	if dp < 0 {
		return core.Black
	}
	return matSpecular.MultiplyVec(lightColor).Multiply(math.Pow(dp, shininess)).Clamp(0, 1)
}

// TotalColor combines the three Phong terms for a light at lightPos.
// The attenuation factor scales diffuse and specular only.
func TotalColor(mat material.Material, lightColor, v, n, lightPos, point core.Vec3, attenuationOn bool, at Attenuation) core.Vec3 {
	l := lightPos.Subtract(point).Normalize()
	r := n.Multiply(2 * l.Dot(n)).Subtract(l).Normalize()

	factor := 1.0
	if attenuationOn {
		factor = at.Factor(lightPos.Distance(point))
	}

	ambient := AmbientColor(mat.Ambient, lightColor)
	diffuse := DiffuseColor(mat.Diffuse, lightColor, l, n)
	specular := SpecularColor(mat.Specular, lightColor, mat.Shininess, r, v)

	return diffuse.Add(specular).Multiply(factor).Add(ambient).Clamp(0, 1)
}
