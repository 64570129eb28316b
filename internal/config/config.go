// Package config loads the stackwm configuration file. Parsing goes
// through a raw struct whose fields are pointers, so that "not set"
// and "set to the zero value" stay distinguishable when defaults are
// applied.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Action names bindable to key sequences.
const (
	ActionFocusNext     = "focus_next"
	ActionFocusPrev     = "focus_prev"
	ActionSwapNext      = "swap_next"
	ActionSwapPrev      = "swap_prev"
	ActionRotateNext    = "rotate_next"
	ActionRotatePrev    = "rotate_prev"
	ActionPromote       = "promote"
	ActionCloseWindow   = "close_window"
	ActionNextWorkspace = "next_workspace"
	ActionPrevWorkspace = "prev_workspace"
	ActionMoveNext      = "move_next_workspace"
	ActionMovePrev      = "move_prev_workspace"
	ActionQuit          = "quit"
)

// Border holds window border appearance.
type Border struct {
	Width     int
	Focused   uint32
	Unfocused uint32
}

// Config is the effective configuration with all defaults applied.
type Config struct {
	Workspaces  []string
	Layout      string
	MainRatio   int // percent of the region width given to the main column
	GapSize     int
	Border      Border
	Keybindings map[string]string // action name -> key sequence
}

type rawBorder struct {
	Width     *int    `yaml:"width"`
	Focused   *string `yaml:"focused"`
	Unfocused *string `yaml:"unfocused"`
}

type rawConfig struct {
	Workspaces  []string          `yaml:"workspaces"`
	Layout      *string           `yaml:"layout"`
	MainRatio   *int              `yaml:"main_ratio"`
	GapSize     *int              `yaml:"gap_size"`
	Border      *rawBorder        `yaml:"border"`
	Keybindings map[string]string `yaml:"keybindings"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Workspaces: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		Layout:     "main_stack",
		MainRatio:  60,
		GapSize:    10,
		Border: Border{
			Width:     2,
			Focused:   0x5294e2,
			Unfocused: 0x3b4252,
		},
		Keybindings: map[string]string{
			ActionFocusNext:     "Mod4-j",
			ActionFocusPrev:     "Mod4-k",
			ActionSwapNext:      "Mod4-Shift-j",
			ActionSwapPrev:      "Mod4-Shift-k",
			ActionRotateNext:    "Mod4-Shift-period",
			ActionRotatePrev:    "Mod4-Shift-comma",
			ActionPromote:       "Mod4-Return",
			ActionCloseWindow:   "Mod4-Shift-q",
			ActionNextWorkspace: "Mod4-bracketright",
			ActionPrevWorkspace: "Mod4-bracketleft",
			ActionMoveNext:      "Mod4-Shift-bracketright",
			ActionMovePrev:      "Mod4-Shift-bracketleft",
			ActionQuit:          "Mod4-Shift-e",
		},
	}
}

// KnownActions lists every bindable action.
func KnownActions() []string {
	return []string{
		ActionFocusNext, ActionFocusPrev,
		ActionSwapNext, ActionSwapPrev,
		ActionRotateNext, ActionRotatePrev,
		ActionPromote, ActionCloseWindow,
		ActionNextWorkspace, ActionPrevWorkspace,
		ActionMoveNext, ActionMovePrev,
		ActionQuit,
	}
}

// DefaultConfigPath returns ~/.config/stackwm/stackwm.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "stackwm", "stackwm.yaml"), nil
}

// Load reads the configuration from the standard location. A missing
// file yields the defaults; a malformed file is an error.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse builds an effective config from yaml bytes.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()

	if len(raw.Workspaces) > 0 {
		cfg.Workspaces = raw.Workspaces
	}
	if raw.Layout != nil {
		cfg.Layout = *raw.Layout
	}
	if raw.MainRatio != nil {
		cfg.MainRatio = *raw.MainRatio
	}
	if raw.GapSize != nil {
		cfg.GapSize = *raw.GapSize
	}

	if raw.Border != nil {
		if raw.Border.Width != nil {
			cfg.Border.Width = *raw.Border.Width
		}
		if raw.Border.Focused != nil {
			color, err := parseColor(*raw.Border.Focused)
			if err != nil {
				return nil, fmt.Errorf("border.focused: %w", err)
			}
			cfg.Border.Focused = color
		}
		if raw.Border.Unfocused != nil {
			color, err := parseColor(*raw.Border.Unfocused)
			if err != nil {
				return nil, fmt.Errorf("border.unfocused: %w", err)
			}
			cfg.Border.Unfocused = color
		}
	}

	for action, seq := range raw.Keybindings {
		if !isKnownAction(action) {
			return nil, fmt.Errorf("unknown keybinding action: %q", action)
		}
		if seq == "" {
			// An empty sequence unbinds the action.
			delete(cfg.Keybindings, action)
			continue
		}
		cfg.Keybindings[action] = seq
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if len(c.Workspaces) == 0 {
		return fmt.Errorf("at least one workspace is required")
	}
	if c.MainRatio < 10 || c.MainRatio > 90 {
		return fmt.Errorf("main_ratio must be between 10 and 90, got %d", c.MainRatio)
	}
	if c.GapSize < 0 {
		return fmt.Errorf("gap_size must not be negative, got %d", c.GapSize)
	}
	if c.Border.Width < 0 {
		return fmt.Errorf("border.width must not be negative, got %d", c.Border.Width)
	}
	switch c.Layout {
	case "main_stack", "grid", "monocle":
	default:
		return fmt.Errorf("unknown layout: %q", c.Layout)
	}
	return nil
}

func isKnownAction(action string) bool {
	for _, known := range KnownActions() {
		if action == known {
			return true
		}
	}
	return false
}

// parseColor accepts "#rrggbb" or "0xrrggbb" hex colors.
func parseColor(s string) (uint32, error) {
	var hex string
	switch {
	case len(s) == 7 && s[0] == '#':
		hex = s[1:]
	case len(s) == 8 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		hex = s[2:]
	default:
		return 0, fmt.Errorf("invalid color %q (expected #rrggbb)", s)
	}

	var color uint32
	for _, c := range hex {
		var digit uint32
		switch {
		case c >= '0' && c <= '9':
			digit = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			digit = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			digit = uint32(c-'A') + 10
		default:
			return 0, fmt.Errorf("invalid color %q (expected #rrggbb)", s)
		}
		color = color<<4 | digit
	}
	return color, nil
}
