package material

import "github.com/df07/go-interactive-raytracer/pkg/core"

// Classic OpenGL material table. Shininess is already scaled to the 0..128 exponent range.
var (
	Brass = Material{
		Ambient:   core.NewVec3(0.329412, 0.223529, 0.027451),
		Diffuse:   core.NewVec3(0.780392, 0.568627, 0.113725),
		Specular:  core.NewVec3(0.992157, 0.941176, 0.807843),
		Shininess: 27.8974,
	}
	Bronze = Material{
		Ambient:   core.NewVec3(0.2125, 0.1275, 0.054),
		Diffuse:   core.NewVec3(0.714, 0.4284, 0.18144),
		Specular:  core.NewVec3(0.393548, 0.271906, 0.166721),
		Shininess: 25.6,
	}
	Chrome = Material{
		Ambient:   core.NewVec3(0.25, 0.25, 0.25),
		Diffuse:   core.NewVec3(0.4, 0.4, 0.4),
		Specular:  core.NewVec3(0.774597, 0.774597, 0.774597),
		Shininess: 76.8,
	}
	Copper = Material{
		Ambient:   core.NewVec3(0.19125, 0.0735, 0.0225),
		Diffuse:   core.NewVec3(0.7038, 0.27048, 0.0828),
		Specular:  core.NewVec3(0.256777, 0.137622, 0.086014),
		Shininess: 12.8,
	}
	Gold = Material{
		Ambient:   core.NewVec3(0.24725, 0.1995, 0.0745),
		Diffuse:   core.NewVec3(0.75164, 0.60648, 0.22648),
		Specular:  core.NewVec3(0.628281, 0.555802, 0.366065),
		Shininess: 51.2,
	}
	Tin = Material{
		Ambient:   core.NewVec3(0.105882, 0.058824, 0.113725),
		Diffuse:   core.NewVec3(0.427451, 0.470588, 0.541176),
		Specular:  core.NewVec3(0.333333, 0.333333, 0.521569),
		Shininess: 9.84615,
	}
	Silver = Material{
		Ambient:   core.NewVec3(0.19225, 0.19225, 0.19225),
		Diffuse:   core.NewVec3(0.50754, 0.50754, 0.50754),
		Specular:  core.NewVec3(0.508273, 0.508273, 0.508273),
		Shininess: 51.2,
	}
	Emerald = Material{
		Ambient:   core.NewVec3(0.0215, 0.1745, 0.0215),
		Diffuse:   core.NewVec3(0.07568, 0.61424, 0.07568),
		Specular:  core.NewVec3(0.633, 0.727811, 0.633),
		Shininess: 76.8,
	}
	Jade = Material{
		Ambient:   core.NewVec3(0.135, 0.2225, 0.1575),
		Diffuse:   core.NewVec3(0.54, 0.89, 0.63),
		Specular:  core.NewVec3(0.316228, 0.316228, 0.316228),
		Shininess: 12.8,
	}
	Obsidian = Material{
		Ambient:   core.NewVec3(0.05375, 0.05, 0.06625),
		Diffuse:   core.NewVec3(0.18275, 0.17, 0.22525),
		Specular:  core.NewVec3(0.332741, 0.328634, 0.346435),
		Shininess: 38.4,
	}
	Pearl = Material{
		Ambient:   core.NewVec3(0.25, 0.20725, 0.20725),
		Diffuse:   core.NewVec3(1.0, 0.829, 0.829),
		Specular:  core.NewVec3(0.296648, 0.296648, 0.296648),
		Shininess: 11.264,
	}
	Ruby = Material{
		Ambient:   core.NewVec3(0.1745, 0.01175, 0.01175),
		Diffuse:   core.NewVec3(0.61424, 0.04136, 0.04136),
		Specular:  core.NewVec3(0.727811, 0.626959, 0.626959),
		Shininess: 76.8,
	}
	Turquoise = Material{
		Ambient:   core.NewVec3(0.1, 0.18725, 0.1745),
		Diffuse:   core.NewVec3(0.396, 0.74151, 0.69102),
		Specular:  core.NewVec3(0.297254, 0.30829, 0.306678),
		Shininess: 12.8,
	}
	RedPlastic = Material{
		Ambient:   core.NewVec3(0, 0, 0),
		Diffuse:   core.NewVec3(0.5, 0, 0),
		Specular:  core.NewVec3(0.7, 0.6, 0.6),
		Shininess: 32,
	}
)

// Named returns a material from the table by its lower-case name
func Named(name string) (Material, bool) {
	m, ok := named[name]
	return m, ok
}

var named = map[string]Material{
	"brass":      Brass,
	"bronze":     Bronze,
	"chrome":     Chrome,
	"copper":     Copper,
	"gold":       Gold,
	"tin":        Tin,
	"silver":     Silver,
	"emerald":    Emerald,
	"jade":       Jade,
	"obsidian":   Obsidian,
	"pearl":      Pearl,
	"ruby":       Ruby,
	"turquoise":  Turquoise,
	"redplastic": RedPlastic,
}
