package scene

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownScene is returned by CreateScene for names not in ListScenes
var ErrUnknownScene = errors.New("unknown scene")

// DefaultAspectRatio is used when Options leaves the aspect ratio unset
const DefaultAspectRatio = 16.0 / 9.0

// Options parameterize scene construction
type Options struct {
	AspectRatio float64 // Width / height; 0 uses DefaultAspectRatio
	Texture     string  // Image path for scenes that take a texture
	Seed        int64   // Seed for procedurally placed objects
}

func (o Options) aspectRatio() float64 {
	if o.AspectRatio <= 0 {
		return DefaultAspectRatio
	}
	return o.AspectRatio
}

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string // Name passed to CreateScene
	DisplayName string // Human readable name
	Description string
}

type builtinScene struct {
	description string
	build       func(Options) (*Scene, error)
}

// builtinOrder fixes the listing order of builtinScenes
var builtinOrder = []string{"simple", "random", "matte", "lights", "textured"}

var builtinScenes = map[string]builtinScene{
	"simple":   {"Diffuse and fuzzy metal spheres on a checkered ground", NewSimpleScene},
	"random":   {"Grid of random small spheres around three large ones", NewRandomScene},
	"matte":    {"Single matte sphere under a uniform sky", NewMatteScene},
	"lights":   {"Spheres lit only by emissive spheres", NewLightsScene},
	"textured": {"Image-textured globe (UV debug pattern without -texture)", NewTexturedScene},
}

// ListScenes returns the built-in scenes in a stable order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinOrder))
	for _, id := range builtinOrder {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: builtinScenes[id].description,
		})
	}
	return scenes
}

// CreateScene builds the named scene. The returned scene still needs Preprocess.
func CreateScene(name string, opts Options) (*Scene, error) {
	builtin, ok := builtinScenes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(builtinOrder, ", "))
	}

	s, err := builtin.build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene %q: %w", name, err)
	}
	return s, nil
}

// titleCase converts a scene ID to a display name,
// e.g. "random-spheres" -> "Random Spheres"
func titleCase(s string) string {
	words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(s))
	return cases.Title(language.English).String(strings.Join(words, " "))
}
