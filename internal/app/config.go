package app

import (
	"os"
	"strings"

	"github.com/juju/gnuflag"
	errgo "gopkg.in/errgo.v1"

	"lifeee/internal/core"
	"lifeee/pkg/lexicon"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Pattern  string
	Lexicon  string
	Settings string
	Set      KVList
	Log      string
	Width    int
	Height   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern: "Glider",
		Log:     "<root>=INFO",
		Width:   1024,
		Height:  720,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *gnuflag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "catalog term applied at startup")
	fs.StringVar(&c.Lexicon, "lexicon", c.Lexicon, "lexicon file to load instead of the built-in catalog")
	fs.StringVar(&c.Settings, "settings", c.Settings, "YAML file with view settings")
	fs.Var(&c.Set, "set", "setting override in key=value form (repeatable)")
	fs.StringVar(&c.Log, "log", c.Log, "logging configuration")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
}

// LoadSettings returns the view settings: the defaults, then the settings
// file if one was given, then the --set overrides.
func (c *Config) LoadSettings() (core.Settings, error) {
	s := core.DefaultSettings()
	if c.Settings != "" {
		var err error
		s, err = core.LoadSettings(c.Settings)
		if err != nil {
			return core.Settings{}, errgo.Mask(err)
		}
	}
	return s.Override(c.Set.Map()), nil
}

// LoadLexicon returns the catalog named by path, or the built-in one when
// path is empty.
func LoadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		lex, err := lexicon.Default()
		if err != nil {
			return nil, errgo.NoteMask(err, "cannot load built-in lexicon", errgo.Any)
		}
		return lex, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errgo.Notef(err, "cannot open lexicon")
	}
	defer f.Close()
	lex, err := lexicon.Parse(f)
	if err != nil {
		return nil, errgo.NoteMask(err, "cannot load lexicon "+path, errgo.Any)
	}
	return lex, nil
}

// KVList collects repeated key=value flag values.
type KVList []string

// String implements gnuflag.Value.
func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set implements gnuflag.Value.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return errgo.Newf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the collected pairs. Later values win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}
