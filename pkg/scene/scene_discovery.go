package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

// Builder creates a scene for the given image size. texture may be nil.
type Builder func(width, height int, texture material.Texture) (*Scene, error)

type registeredScene struct {
	description string
	build       Builder
}

var builtins = map[string]registeredScene{
	"default": {
		description: "Primitives, materials, a transparent plane, a positional light and a spot light",
		build: func(width, height int, texture material.Texture) (*Scene, error) {
			demo, err := NewDefaultScene(width, height, texture)
			if err != nil {
				return nil, err
			}
			return demo.Scene, nil
		},
	},
	"primitives": {
		description: "Open and closed cylinders and a cone under a positional light and a spot light",
		build: func(width, height int, _ material.Texture) (*Scene, error) {
			return NewPrimitivesScene(width, height)
		},
	},
	"spheregrid": {
		description: "A grid of colored spheres sweeping hue and chroma",
		build: func(width, height int, _ material.Texture) (*Scene, error) {
			return NewSphereGridScene(width, height)
		},
	},
	"textures": {
		description: "Texture mapping on a plane, sphere, cylinder, disk and triangle",
		build:       NewTextureScene,
	},
	"plane": {
		description: "A single ground plane with all lights off",
		build: func(width, height int, _ material.Texture) (*Scene, error) {
			return NewPlaneScene(width, height)
		},
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	ids := make([]string, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	scenes := make([]SceneInfo, 0, len(ids))
	for _, id := range ids {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: builtins[id].description,
		})
	}
	return scenes
}

// Build creates the built-in scene with the given ID
func Build(id string, width, height int, texture material.Texture) (*Scene, error) {
	entry, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %s", id)
	}
	return entry.build(width, height, texture)
}

// titleCase converts kebab-case or snake_case to Title Case
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
