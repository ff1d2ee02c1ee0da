package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when no built-in scene has the requested ID
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtinScene struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Description: "Three spheres against a floor and walls made of flattened spheres",
			Group:       "Sphere Scenes",
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "room",
			Description: "Spheres in a box of planes lit from a low corner",
			Group:       "Plane Scenes",
		},
		build: NewRoomScene,
	},
	{
		info: SceneInfo{
			ID:          "patterns",
			Description: "Checkered floor, ringed wall and patterned spheres",
			Group:       "Plane Scenes",
		},
		build: NewPatternScene,
	},
	{
		info: SceneInfo{
			ID:          "plane",
			Description: "Three spheres resting on an infinite plane",
			Group:       "Plane Scenes",
		},
		build: NewPlaneScene,
	},
}

// DefaultSceneID is the scene rendered when none is requested
const DefaultSceneID = "default"

// NewScene builds the built-in scene with the given ID
func NewScene(id string) (*Scene, error) {
	for _, s := range builtinScenes {
		if s.info.ID == id {
			return s.build()
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// SceneIDs returns the IDs of all built-in scenes in registration order
func SceneIDs() []string {
	ids := make([]string, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		ids = append(ids, s.info.ID)
	}
	return ids
}

// ListScenes returns the built-in scenes grouped by category, groups sorted
// by name
func ListScenes() ScenesResponse {
	groupMap := make(map[string][]SceneInfo)
	for _, s := range builtinScenes {
		info := s.info
		info.DisplayName = titleCase(info.ID)
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}

	var groupNames []string
	for name := range groupMap {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	var response ScenesResponse
	for _, name := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   name,
			Scenes: groupMap[name],
		})
	}
	return response
}

// titleCase converts an ID to title case
// e.g., "simple-plane" -> "Simple Plane"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
