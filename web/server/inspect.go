package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Eye          [3]float64             `json:"eye"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	Color        [3]float64             `json:"color"` // Shaded colour of the pixel
	Hex          string                 `json:"hex"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func tuple3(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

func color3(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// hexColor formats c as #rrggbb using the canvas quantisation
func hexColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", canvas.Quantize(c.R), canvas.Quantize(c.G), canvas.Quantize(c.B))
}

// extractMaterialInfo lists the shading coefficients of a material
func (s *Server) extractMaterialInfo(m material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           hexColor(m.Color),
		"ambient":         m.Ambient,
		"diffuse":         m.Diffuse,
		"specular":        m.Specular,
		"shininess":       m.Shininess,
		"reflective":      m.Reflective,
		"transparency":    m.Transparency,
		"refractiveIndex": m.RefractiveIndex,
	}
	if m.Pattern != nil {
		properties["pattern"] = m.Pattern.Kind.String()
	}
	return properties
}

// extractGeometryInfo describes the shape instance that was hit
func (s *Server) extractGeometryInfo(shape *geometry.Shape) map[string]interface{} {
	return map[string]interface{}{
		"transform":   shape.Transform(),
		"castShadows": shape.CastShadows,
	}
}

// InspectResult contains the shading context of the first hit along a pixel's ray
type InspectResult struct {
	Hit   bool
	Comps geometry.Computations
	Color core.Color
}

// inspectPixel casts the camera ray through the pixel and shades what it hits
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	raytracer := sceneObj.NewRaytracer(nil)
	ray := raytracer.Camera().RayForPixel(pixelX, pixelY)

	comps, ok := sceneObj.World.Trace(ray)
	if !ok {
		return InspectResult{Hit: false, Color: sceneObj.World.Background}
	}
	return InspectResult{
		Hit:   true,
		Comps: comps,
		Color: sceneObj.World.ShadeHit(comps, sceneObj.RenderConfig.MaxDepth),
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

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

	sceneObj, err := s.configureScene(inspectReq, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Bounds are checked against the effective size, which may come from the scene
	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{
			Hit:   false,
			Color: color3(result.Color),
			Hex:   hexColor(result.Color),
		})
		return
	}

	comps := result.Comps
	shadowed := make([]bool, len(sceneObj.World.Lights))
	for i, light := range sceneObj.World.Lights {
		shadowed[i] = sceneObj.World.IsShadowed(comps.OverPoint, light)
	}

	response := InspectResponse{
		Hit:          true,
		GeometryType: comps.Shape.String(),
		Point:        tuple3(comps.Point),
		Normal:       tuple3(comps.NormalV),
		Eye:          tuple3(comps.EyeV),
		Distance:     comps.T,
		Inside:       comps.Inside,
		Color:        color3(result.Color),
		Hex:          hexColor(result.Color),
		Properties: map[string]interface{}{
			"material": s.extractMaterialInfo(comps.Shape.Material),
			"geometry": s.extractGeometryInfo(comps.Shape),
			"refraction": map[string]interface{}{
				"n1":                      comps.Indices.N1,
				"n2":                      comps.Indices.N2,
				"totalInternalReflection": comps.Indices.TIR,
				"reflectance":             comps.Reflectance(),
			},
			"shadowed": shadowed,
		},
	}
	writeJSON(w, http.StatusOK, response)
}
