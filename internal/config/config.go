// internal/config/config.go
//
// This package loads named prompt profiles from a YAML file so a CLI can ask
// its questions without hard-coding the wording. A missing file means "use
// the built-in defaults".

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/termprompt/internal/textfile"
)

// DefaultPath is where the CLI looks for profiles unless told otherwise.
const DefaultPath = ".termprompt.yaml"

const defaultConfigYAML = `# termprompt configuration
version: 1

# Text shown by "termprompt pause".
pause_message: "Press [Enter] to continue..."

# Fallbacks for profiles that leave prompt or error_message empty.
defaults:
  prompt: ""
  error_message: ""

# Named questions for "termprompt ask <name>".
# kind is one of: integer, line, choice.
# rule is an optional expression over "value" that must evaluate to true.
prompts:
  age:
    kind: integer
    message: "How old are you?"
    error_message: "Please enter a whole number between 0 and 150"
    rule: "value >= 0 && value <= 150"
  name:
    kind: line
    message: "What is your name?"
    rule: "len(value) <= 64"
  proceed:
    kind: choice
    message: "Proceed?"
`

// Kind selects the raw-value reader of a profile.
type Kind string

const (
	// KindInteger reads one whitespace-delimited integer.
	KindInteger Kind = "integer"
	// KindLine reads one non-blank line.
	KindLine Kind = "line"
	// KindChoice reads a yes/no answer.
	KindChoice Kind = "choice"
)

// Profile declares one named question.
type Profile struct {
	Kind         Kind   `yaml:"kind"`
	Message      string `yaml:"message,omitempty"`
	Prompt       string `yaml:"prompt,omitempty"`
	ErrorMessage string `yaml:"error_message,omitempty"`
	Rule         string `yaml:"rule,omitempty"`
}

// Defaults fill empty profile fields.
type Defaults struct {
	Prompt       string `yaml:"prompt,omitempty"`
	ErrorMessage string `yaml:"error_message,omitempty"`
}

// Settings models the YAML file.
type Settings struct {
	Version      int                `yaml:"version"`
	PauseMessage string             `yaml:"pause_message,omitempty"`
	Defaults     Defaults           `yaml:"defaults"`
	Prompts      map[string]Profile `yaml:"prompts"`
}

// Config holds the loaded settings and where they came from.
type Config struct {
	// Path is the file the settings were read from, even if it did not exist.
	Path string

	Settings Settings
}

// Load reads the profile file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{Path: path, Settings: defaultSettings()}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init writes a commented starter file at path unless one already exists.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: ensure dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Profile returns the named profile with defaults applied.
func (c *Config) Profile(name string) (Profile, error) {
	key := strings.TrimSpace(name)
	p, ok := c.Settings.Prompts[key]
	if !ok {
		return Profile{}, fmt.Errorf("config: unknown prompt %q", name)
	}
	if p.Prompt == "" {
		p.Prompt = c.Settings.Defaults.Prompt
	}
	if p.ErrorMessage == "" {
		p.ErrorMessage = c.Settings.Defaults.ErrorMessage
	}
	return p, nil
}

// Names lists the configured profiles in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Settings.Prompts))
	for name := range c.Settings.Prompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PauseMessage returns the configured pause text, or "" for the default.
func (c *Config) PauseMessage() string {
	return c.Settings.PauseMessage
}

func (c *Config) load() error {
	data, err := textfile.ReadAll(c.Path)
	if err != nil {
		if errors.Is(err, textfile.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", c.Path, err)
	}

	var parsed Settings
	if err := yaml.Unmarshal([]byte(data), &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", c.Path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Settings = parsed
	return nil
}

func defaultSettings() Settings {
	return Settings{
		Version: 1,
		Prompts: map[string]Profile{},
	}
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Prompts == nil {
		s.Prompts = map[string]Profile{}
	}
}

func (s *Settings) normalize() {
	normalized := make(map[string]Profile, len(s.Prompts))
	for name, p := range s.Prompts {
		p.Kind = Kind(strings.ToLower(strings.TrimSpace(string(p.Kind))))
		if p.Kind == "" {
			p.Kind = KindLine
		}
		p.Rule = strings.TrimSpace(p.Rule)
		normalized[strings.TrimSpace(name)] = p
	}
	s.Prompts = normalized
}

func (s *Settings) validate() error {
	if s.Version != 1 {
		return fmt.Errorf("unsupported config version %d", s.Version)
	}
	for name, p := range s.Prompts {
		if name == "" {
			return fmt.Errorf("prompts: name is required")
		}
		if err := p.validate(); err != nil {
			return fmt.Errorf("prompts[%s]: %w", name, err)
		}
	}
	return nil
}

func (p Profile) validate() error {
	switch p.Kind {
	case KindInteger, KindLine:
		return nil
	case KindChoice:
		if p.Rule != "" {
			return fmt.Errorf("rule is not supported for choice prompts")
		}
		return nil
	default:
		return fmt.Errorf("kind must be 'integer', 'line' or 'choice'")
	}
}
