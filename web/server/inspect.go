package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// LightInfo is one light's contribution to an inspected pixel
type LightInfo struct {
	Index        int        `json:"index"`
	On           bool       `json:"on"`
	Position     [3]float64 `json:"position"`
	InShadow     bool       `json:"inShadow"`
	Contribution [3]float64 `json:"contribution"`
}

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit              bool                   `json:"hit"`
	MaterialType     string                 `json:"materialType"`
	GeometryType     string                 `json:"geometryType"`
	Point            [3]float64             `json:"point"`
	Normal           [3]float64             `json:"normal"`
	Distance         float64                `json:"distance"`
	UV               [2]float64             `json:"uv"`
	Textured         bool                   `json:"textured"`
	TransparentHit   bool                   `json:"transparentHit"`
	TransparentT     float64                `json:"transparentDistance,omitempty"`
	TransparentAlpha float64                `json:"transparentAlpha,omitempty"`
	Color            [3]float64             `json:"color"`
	Lights           []LightInfo            `json:"lights"`
	Properties       map[string]interface{} `json:"properties"`
	Console          []ConsoleMessage       `json:"console"`
}

func vec(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo describes a Phong material
func (s *Server) extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"ambient":   vec(mat.Ambient),
		"diffuse":   vec(mat.Diffuse),
		"specular":  vec(mat.Specular),
		"shininess": mat.Shininess,
		"color":     hexColor(mat.Diffuse),
	}
	return "phong", properties
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vec(geom.Point)
		properties["normal"] = vec(geom.Normal)
		return "plane", properties

	case *geometry.Disk:
		properties["center"] = vec(geom.Center)
		properties["normal"] = vec(geom.Normal)
		properties["radius"] = geom.Radius
		return "disk", properties

	case *geometry.Triangle:
		properties["a"] = vec(geom.A)
		properties["b"] = vec(geom.B)
		properties["c"] = vec(geom.C)
		properties["normal"] = vec(geom.Normal())
		return "triangle", properties

	case *geometry.CylinderY:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		properties["length"] = geom.Length
		return "cylinder_y", properties

	case *geometry.CylinderZ:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		properties["length"] = geom.Length
		return "cylinder_z", properties

	case *geometry.ClosedCylinderY:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		properties["length"] = geom.Length
		return "closed_cylinder_y", properties

	case *geometry.ConeY:
		properties["apex"] = vec(geom.Apex)
		properties["radius"] = geom.Radius
		properties["height"] = geom.Height
		return "cone_y", properties

	default:
		return "unknown", properties
	}
}

// handleInspect handles debug-pixel inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	tracer := renderer.NewRayTracer(renderer.DefaultRenderConfig(), webLogger)
	inspection, err := tracer.InspectPixel(sceneObj, pixelX, pixelY, scene.BackgroundColor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := s.inspectResponse(inspection)
	response.Console = drainConsole(consoleChan)
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) inspectResponse(inspection renderer.PixelInspection) InspectResponse {
	response := InspectResponse{
		Color:  vec(inspection.Color),
		Lights: make([]LightInfo, 0, len(inspection.Lights)),
	}
	for _, l := range inspection.Lights {
		response.Lights = append(response.Lights, LightInfo{
			Index:        l.Index,
			On:           l.On,
			Position:     vec(l.Position),
			InShadow:     l.InShadow,
			Contribution: vec(l.Contribution),
		})
	}
	if inspection.Transparent.Found() {
		response.TransparentHit = true
		response.TransparentT = inspection.Transparent.T
		response.TransparentAlpha = inspection.Transparent.Alpha
	}

	hit := inspection.Opaque
	if !hit.Found() {
		return response
	}

	materialType, materialProps := s.extractMaterialInfo(hit.Material)
	geometryType, geometryProps := s.extractGeometryInfo(hit.Shape)

	response.Hit = true
	response.MaterialType = materialType
	response.GeometryType = geometryType
	response.Point = vec(hit.Point)
	response.Normal = vec(inspection.Normal)
	response.Distance = hit.T
	response.UV = [2]float64{hit.UV.X, hit.UV.Y}
	response.Textured = hit.Texture != nil
	response.Properties = map[string]interface{}{
		"material": materialProps,
		"geometry": geometryProps,
	}
	return response
}
