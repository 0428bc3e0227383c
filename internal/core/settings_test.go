package core

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFromMap(t *testing.T) {
	c := qt.New(t)
	c.Assert(FromMap(nil), qt.Equals, DefaultSettings())

	s := FromMap(map[string]string{
		"cell_size":  "12",
		"grid_width": "1",
		"history":    "3",
		"speed":      "7",
		"zoom":       "2.5",
		"unknown":    "x",
	})
	c.Assert(s, qt.Equals, Settings{CellSize: 12, GridWidth: 1, History: 3, Speed: 7, Zoom: 2.5})
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	c := qt.New(t)
	s := FromMap(map[string]string{
		"cell_size": "-1",
		"history":   "many",
		"speed":     "fast",
	})
	c.Assert(s, qt.Equals, DefaultSettings())
}

func TestFromMapClamps(t *testing.T) {
	c := qt.New(t)
	s := FromMap(map[string]string{"speed": "99", "zoom": "0.01"})
	c.Assert(s.Speed, qt.Equals, 10)
	c.Assert(s.Zoom, qt.Equals, 0.1)
}

func TestLoadSettings(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.TempDir(), "settings.yaml")
	err := os.WriteFile(path, []byte("speed: 8\nhistory: 4\nzoom: 9\n"), 0o644)
	c.Assert(err, qt.IsNil)

	s, err := LoadSettings(path)
	c.Assert(err, qt.IsNil)
	want := DefaultSettings()
	want.Speed = 8
	want.History = 4
	want.Zoom = 5
	c.Assert(s, qt.Equals, want)
}

func TestLoadSettingsErrors(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()
	_, err := LoadSettings(filepath.Join(dir, "missing.yaml"))
	c.Assert(err, qt.ErrorMatches, `cannot read settings: .*`)

	path := filepath.Join(dir, "bad.yaml")
	err = os.WriteFile(path, []byte("speeed: 3\n"), 0o644)
	c.Assert(err, qt.IsNil)
	_, err = LoadSettings(path)
	c.Assert(err, qt.ErrorMatches, `cannot parse settings ".*bad.yaml": (.|\n)*speeed(.|\n)*`)
}

func TestParameterControl(t *testing.T) {
	c := qt.New(t)
	c.Assert(SpeedControl.Nudge(5, 1), qt.Equals, 6.0)
	c.Assert(SpeedControl.Nudge(10, 1), qt.Equals, 10.0)
	c.Assert(SpeedControl.Nudge(1, -3), qt.Equals, 1.0)
	c.Assert(ZoomControl.Clamp(7), qt.Equals, 5.0)
	c.Assert(ParameterControl{}.Clamp(-3), qt.Equals, -3.0)
}

func TestSettingsParameters(t *testing.T) {
	c := qt.New(t)
	snap := DefaultSettings().Parameters()
	c.Assert(snap.Groups[0].Params, qt.DeepEquals, []Parameter{
		{Key: "speed", Label: "Speed", Type: ParamTypeInt, Value: "5"},
		{Key: "zoom", Label: "Zoom", Type: ParamTypeFloat, Value: "1.0"},
		{Key: "history", Label: "Trail", Type: ParamTypeInt, Value: "10"},
	})
}

func TestParameterSnapshotMerge(t *testing.T) {
	c := qt.New(t)
	s := NewSession(3)
	s.Apply(blinker)
	snap := s.Parameters().Merge(DefaultSettings().Parameters())
	c.Assert(snap.Groups, qt.HasLen, 2)
	c.Assert(snap.Groups[0].Name, qt.Equals, "Life")
	c.Assert(snap.Groups[1].Name, qt.Equals, "View")

	p, ok := snap.Lookup("population")
	c.Assert(ok, qt.IsTrue)
	c.Assert(p.Value, qt.Equals, "3")
	p, ok = snap.Lookup("zoom")
	c.Assert(ok, qt.IsTrue)
	c.Assert(p.Value, qt.Equals, "1.0")
	_, ok = snap.Lookup("rain")
	c.Assert(ok, qt.IsFalse)
}
