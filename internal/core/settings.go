package core

import (
	"os"
	"strconv"

	errgo "gopkg.in/errgo.v1"
	"gopkg.in/yaml.v2"
)

// Settings holds the presentation tunables of the viewer.
type Settings struct {
	CellSize  float64 `yaml:"cell_size"`
	GridWidth float64 `yaml:"grid_width"`
	History   int     `yaml:"history"`
	Speed     int     `yaml:"speed"`
	Zoom      float64 `yaml:"zoom"`
}

// DefaultSettings returns the standard configuration.
func DefaultSettings() Settings {
	return Settings{
		CellSize:  20,
		GridWidth: 0.5,
		History:   10,
		Speed:     5,
		Zoom:      1,
	}
}

// FromMap populates settings from a string map (flag-style key/value pairs),
// starting from the defaults.
func FromMap(cfg map[string]string) Settings {
	return DefaultSettings().Override(cfg)
}

// Override returns s with the values in cfg applied. Unknown keys and
// unparsable values are ignored.
func (s Settings) Override(cfg map[string]string) Settings {
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			s.CellSize = parsed
		}
	}
	if v, ok := cfg["grid_width"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			s.GridWidth = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			s.History = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			s.Speed = parsed
		}
	}
	if v, ok := cfg["zoom"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			s.Zoom = parsed
		}
	}
	return s.Clamp()
}

// Clamp brings every field back into its valid range.
func (s Settings) Clamp() Settings {
	d := DefaultSettings()
	if s.CellSize <= 0 {
		s.CellSize = d.CellSize
	}
	if s.GridWidth < 0 {
		s.GridWidth = 0
	}
	if s.History < 0 {
		s.History = 0
	}
	s.Speed = int(SpeedControl.Clamp(float64(s.Speed)))
	s.Zoom = ZoomControl.Clamp(s.Zoom)
	return s
}

// LoadSettings reads a YAML settings file. Missing keys keep their defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errgo.Notef(err, "cannot read settings")
	}
	s := DefaultSettings()
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Settings{}, errgo.Notef(err, "cannot parse settings %q", path)
	}
	return s.Clamp(), nil
}

// Parameters describes the settings for HUD display.
func (s Settings) Parameters() ParameterSnapshot {
	return ParameterSnapshot{Groups: []ParameterGroup{{
		Name: "View",
		Params: []Parameter{
			intParam(SpeedControl.Key, SpeedControl.Label, s.Speed),
			floatParam(ZoomControl.Key, ZoomControl.Label, s.Zoom),
			intParam("history", "Trail", s.History),
		},
	}}}
}
