package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"web/pinmap/cluster"
)

// Scene is a yaml-loadable description of a map view: the camera state
// plus the cluster radius. Explicit CLI flags override scene values.
type Scene struct {
	Viewport SceneViewport `yaml:"viewport"`
	RadiusPx float64       `yaml:"radiusPx"`
}

type SceneViewport struct {
	Longitude float64 `yaml:"longitude"`
	Latitude  float64 `yaml:"latitude"`
	Zoom      float64 `yaml:"zoom"`
	Pitch     float64 `yaml:"pitch"`
	Bearing   float64 `yaml:"bearing"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

func defaultScene() Scene {
	return Scene{
		Viewport: SceneViewport{Zoom: 4, Width: 1024, Height: 768},
		RadiusPx: cluster.DefaultRadiusPx,
	}
}

func loadScene(path string) (Scene, error) {
	scene := defaultScene()
	data, err := os.ReadFile(path)
	if err != nil {
		return scene, fmt.Errorf("failed to read scene file: %w", err)
	}
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return scene, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	return scene, nil
}

func (s Scene) viewport() cluster.Viewport {
	return cluster.Viewport{
		Longitude: s.Viewport.Longitude,
		Latitude:  s.Viewport.Latitude,
		Zoom:      s.Viewport.Zoom,
		Pitch:     s.Viewport.Pitch,
		Bearing:   s.Viewport.Bearing,
		Width:     s.Viewport.Width,
		Height:    s.Viewport.Height,
	}
}
