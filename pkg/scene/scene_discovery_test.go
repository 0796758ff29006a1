package scene

import (
	"errors"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"random-spheres", "Random Spheres"},
		{"lights_demo", "Lights Demo"},
		{"my--textured-scene", "My Textured Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtinScenes) {
		t.Fatalf("Expected %d scenes, got %d", len(builtinScenes), len(scenes))
	}
	if scenes[0].ID != "simple" || scenes[0].DisplayName != "Simple" {
		t.Errorf("Expected simple scene first, got %+v", scenes[0])
	}
	for _, info := range scenes {
		if info.Description == "" {
			t.Errorf("Scene %q has no description", info.ID)
		}
	}
}

func TestCreateScene_AllBuiltins(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := CreateScene(info.ID, Options{Seed: 1})
			if err != nil {
				t.Fatalf("CreateScene failed: %v", err)
			}
			if s.Camera == nil || s.Background == nil {
				t.Fatal("Expected camera and background")
			}
			if s.CameraConfig.AspectRatio != DefaultAspectRatio {
				t.Errorf("Expected default aspect ratio, got %f", s.CameraConfig.AspectRatio)
			}
			if s.SamplingConfig.SamplesPerPixel <= 0 || s.SamplingConfig.MaxDepth <= 0 {
				t.Errorf("Expected positive sampling config, got %+v", s.SamplingConfig)
			}
			if err := s.Preprocess(); err != nil {
				t.Fatalf("Preprocess failed: %v", err)
			}
			if s.GetWorld() != s.BVH {
				t.Error("Expected world to be the BVH after Preprocess")
			}
		})
	}
}

func TestCreateScene_Unknown(t *testing.T) {
	_, err := CreateScene("nonexistent", Options{})
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestCreateScene_CaseInsensitive(t *testing.T) {
	if _, err := CreateScene("Matte", Options{}); err != nil {
		t.Errorf("Expected case-insensitive lookup, got %v", err)
	}
}

func TestCreateScene_MissingTexture(t *testing.T) {
	_, err := CreateScene("textured", Options{Texture: "does-not-exist.png"})
	if err == nil {
		t.Error("Expected error for a missing texture file")
	}
}
