package main

import (
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"cornell scene", "cornell", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := scene.ByName(tt.sceneType, 4.0/3.0)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, s)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
				}
				if s == nil {
					t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
				}
				if s.Camera() == nil {
					t.Errorf("Scene '%s' should have a camera", tt.sceneType)
				}
				if len(s.Objects) == 0 {
					t.Errorf("Scene '%s' should have objects", tt.sceneType)
				}
			}
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		sceneType string
	}{
		{"default scene", "default"},
		{"cornell scene", "cornell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := createOutputDir(tt.sceneType)

			if outputDir == "" {
				t.Fatalf("Expected non-empty output directory for scene '%s'", tt.sceneType)
			}
			if !strings.Contains(outputDir, tt.sceneType) {
				t.Errorf("Expected output directory to contain '%s', got '%s'", tt.sceneType, outputDir)
			}
			if !strings.Contains(outputDir, "output") {
				t.Errorf("Expected output directory to contain 'output', got '%s'", outputDir)
			}
		})
	}
}
