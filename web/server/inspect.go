package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool          `json:"hit"`
	GeometryType string        `json:"geometryType,omitempty"`
	ShapeID      uint64        `json:"shapeId,omitempty"`
	Point        [3]float64    `json:"point"`
	Normal       [3]float64    `json:"normal"`
	Distance     float64       `json:"distance"`
	Inside       bool          `json:"inside"`
	InShadow     bool          `json:"inShadow"`
	Colour       [3]float64    `json:"colour"`
	Material     *MaterialInfo `json:"material,omitempty"`
}

// MaterialInfo describes the Phong coefficients and pattern of a material
type MaterialInfo struct {
	Ambient   float64      `json:"ambient"`
	Diffuse   float64      `json:"diffuse"`
	Specular  float64      `json:"specular"`
	Shininess float64      `json:"shininess"`
	Pattern   string       `json:"pattern"`
	Colours   [][3]float64 `json:"colours"`
}

// extractMaterialInfo copies the material into its JSON form
func (s *Server) extractMaterialInfo(m material.Material) *MaterialInfo {
	info := &MaterialInfo{
		Ambient:   m.Ambient,
		Diffuse:   m.Diffuse,
		Specular:  m.Specular,
		Shininess: m.Shininess,
		Pattern:   m.Pattern.Kind.String(),
	}
	switch m.Pattern.Kind {
	case material.Solid:
		info.Colours = [][3]float64{m.Pattern.Colours[0]}
	case material.Stripes, material.Rings:
		info.Colours = [][3]float64{m.Pattern.Colours[0], m.Pattern.Colours[1], m.Pattern.Colours[2]}
	default:
		info.Colours = [][3]float64{m.Pattern.Colours[0], m.Pattern.Colours[1]}
	}
	return info
}

// inspectPixel casts the primary ray through a pixel and describes the
// first shape it hits
func (s *Server) inspectPixel(sceneObj *scene.Scene, req *RenderRequest, pixelX, pixelY int) (InspectResponse, error) {
	// Inspection casts a single ray, so worker and tile settings do not apply
	camera, err := renderer.NewCamera(req.Width, req.Height, req.Fov*math.Pi/180, sceneObj.Camera.ViewTransform())
	if err != nil {
		return InspectResponse{}, err
	}

	ray := camera.RayForPixel(pixelX, pixelY)
	world := sceneObj.World
	hit, ok := geometry.Hit(world.Intersect(ray))
	if !ok {
		return InspectResponse{Hit: false}, nil
	}

	comps := geometry.PrepareComputations(world.Shapes, hit, ray)
	shape := world.Shapes.Get(comps.Shape)
	colour := world.ShadeHit(comps)

	return InspectResponse{
		Hit:          true,
		GeometryType: shape.Kind().String(),
		ShapeID:      uint64(shape.ID()),
		Point:        pointArray(comps.Point),
		Normal:       [3]float64{comps.Normal.X(), comps.Normal.Y(), comps.Normal.Z()},
		Distance:     comps.T,
		Inside:       comps.Inside,
		InShadow:     world.IsShadowed(comps.OverPoint),
		Colour:       colour,
		Material:     s.extractMaterialInfo(shape.Material()),
	}, nil
}

func pointArray(p core.Point) [3]float64 {
	return [3]float64{p.X(), p.Y(), p.Z()}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	inspectReq := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		s.writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := scene.NewScene(inspectReq.Scene)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err.Error())
		return
	}

	response, err := s.inspectPixel(sceneObj, inspectReq, pixelX, pixelY)
	if err != nil {
		s.writeError(w, renderStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, response)
}
