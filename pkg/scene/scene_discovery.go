package scene

import (
	"fmt"
	"strings"
)

// Names returns the available built-in scene names
func Names() []string {
	return []string{"cornell", "default"}
}

// ByName returns the named built-in scene, standing in for an external
// scene-file loader
func ByName(name string, aspectRatio float64) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(aspectRatio), nil
	case "cornell":
		return NewCornellScene(aspectRatio), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}
