package settings

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/weather-presenter/internal/domain"
)

// Widget is one placed widget or notification bound to a location. Prefs are
// kept as persisted strings and decoded on every render.
type Widget struct {
	ID         string             `yaml:"id" validate:"required"`
	Kind       domain.SurfaceKind `yaml:"kind" validate:"omitempty,oneof=widget notification"`
	LocationID string             `yaml:"location_id" validate:"required"`
	Prefs      map[string]string  `yaml:"prefs"`
}

type seedFile struct {
	Widgets []Widget `yaml:"widgets" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadSeed reads widget definitions from a YAML file. An empty kind means
// widget.
func LoadSeed(path string) ([]Widget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := validate.Struct(seed); err != nil {
		return nil, fmt.Errorf("validate seed file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(seed.Widgets))
	for i := range seed.Widgets {
		w := &seed.Widgets[i]
		if seen[w.ID] {
			return nil, fmt.Errorf("validate seed file %s: duplicate widget id %q", path, w.ID)
		}
		seen[w.ID] = true
		if w.Kind == "" {
			w.Kind = domain.SurfaceWidget
		}
	}
	return seed.Widgets, nil
}
