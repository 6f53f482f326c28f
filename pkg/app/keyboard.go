package app

import (
	"unicode"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// KeyEscape quits the session
const KeyEscape = rune(27)

// HandleKey applies one typed character to the state and reports whether the
// key was mapped
func (s *State) HandleKey(key rune) bool {
	step := -LightStep
	if unicode.IsUpper(key) {
		step = LightStep
	}

	switch key {
	case 'a', 'A':
		s.CurrentLight = 0
		s.logLight()
	case 'b', 'B':
		s.CurrentLight = 1
		s.logLight()
	case 'o', 'O':
		light := s.SelectedLight()
		light.Toggle()
		if light.IsOn() {
			s.Logger.Printf("ON\n")
		} else {
			s.Logger.Printf("OFF\n")
		}
	case 'x', 'X':
		s.translateLight(core.NewVec3(step, 0, 0))
	case 'y', 'Y':
		s.translateLight(core.NewVec3(0, step, 0))
	case 'z', 'Z':
		s.translateLight(core.NewVec3(0, 0, step))
	case 'j', 'J':
		s.turnSpot(core.NewVec3(step, 0, 0))
	case 'k', 'K':
		s.turnSpot(core.NewVec3(0, step, 0))
	case 'l', 'L':
		s.turnSpot(core.NewVec3(0, 0, step))
	case 'p', 'P', 'd':
		s.Animated = !s.Animated
	case '+':
		s.AntiAliasing = 3
		s.Logger.Printf("Anti aliasing: %d\n", s.AntiAliasing)
	case '-':
		s.AntiAliasing = 1
		s.Logger.Printf("Anti aliasing: %d\n", s.AntiAliasing)
	case '0', '1', '2':
		s.Reflections = int(key - '0')
		s.Logger.Printf("Num reflections: %d\n", s.Reflections)
	case KeyEscape:
		s.Quit = true
	default:
		s.Logger.Printf("%d unmapped key pressed.\n", key)
		return false
	}
	return true
}

func (s *State) logLight() {
	light := s.SelectedLight()
	s.Logger.Printf("light %d on=%v at %v\n", s.CurrentLight, light.IsOn(), light.ActualPosition(s.Scene.EyeFrame()))
}

func (s *State) translateLight(delta core.Vec3) {
	light := s.SelectedLight()
	light.Translate(delta)
	s.Logger.Printf("%v\n", light.ActualPosition(s.Scene.EyeFrame()))
}

func (s *State) turnSpot(delta core.Vec3) {
	s.SpotDir = s.SpotDir.Add(delta)
	s.Scene.Spot.SetDirection(s.SpotDir)
	s.Logger.Printf("%v\n", s.Scene.Spot.Direction())
}
