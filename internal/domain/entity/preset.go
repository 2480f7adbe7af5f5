package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PresetID identifies a preset. Built-in presets use "1" through "4";
// user presets use "custom-N".
type PresetID string

const customPresetPrefix = "custom-"

// BuiltinPresetCount is the number of immutable built-in presets.
// It is also the floor of the custom preset counter.
const BuiltinPresetCount = 4

var (
	// ErrBuiltinPreset is returned when editing or deleting a built-in preset.
	ErrBuiltinPreset = errors.New("built-in presets cannot be modified")
	// ErrPresetNotFound is returned when a preset ID is unknown.
	ErrPresetNotFound = errors.New("preset not found")
	// ErrInvalidPresetID is returned for IDs that are neither built-in nor custom-N.
	ErrInvalidPresetID = errors.New("invalid preset id")
)

// Preset is a named, persisted pair of URLs offered for one-click split.
type Preset struct {
	ID         PresetID `toml:"id"`
	LeftURL    string   `toml:"left_url"`
	RightURL   string   `toml:"right_url"`
	LeftLabel  string   `toml:"left_label"`
	RightLabel string   `toml:"right_label"`
}

// CustomPresetID formats the ID for custom preset number n.
func CustomPresetID(n int) PresetID {
	return PresetID(customPresetPrefix + strconv.Itoa(n))
}

// IsBuiltin reports whether the ID names one of the built-in presets.
func (id PresetID) IsBuiltin() bool {
	n, err := strconv.Atoi(string(id))
	return err == nil && n >= 1 && n <= BuiltinPresetCount && strconv.Itoa(n) == string(id)
}

// IsCustom reports whether the ID has the custom-N form.
func (id PresetID) IsCustom() bool {
	_, ok := id.CustomNumber()
	return ok
}

// CustomNumber extracts N from a custom-N ID.
func (id PresetID) CustomNumber() (int, bool) {
	s := string(id)
	if !strings.HasPrefix(s, customPresetPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, customPresetPrefix))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Validate checks the ID shape.
func (id PresetID) Validate() error {
	if id.IsBuiltin() || id.IsCustom() {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidPresetID, string(id))
}

// IsBuiltin reports whether the preset is one of the immutable built-ins.
func (p *Preset) IsBuiltin() bool {
	return p != nil && p.ID.IsBuiltin()
}

// Complete reports whether both URLs are set.
func (p *Preset) Complete() bool {
	return p != nil && strings.TrimSpace(p.LeftURL) != "" && strings.TrimSpace(p.RightURL) != ""
}

// BuiltinPresets returns the fixed presets in display order.
func BuiltinPresets() []*Preset {
	return []*Preset{
		{ID: "1", LeftURL: "https://github.com", RightURL: "https://docs.google.com", LeftLabel: "GitHub", RightLabel: "Google Docs"},
		{ID: "2", LeftURL: "https://www.google.com", RightURL: "https://www.wikipedia.org", LeftLabel: "Google", RightLabel: "Wikipedia"},
		{ID: "3", LeftURL: "https://chat.openai.com", RightURL: "https://claude.ai", LeftLabel: "ChatGPT", RightLabel: "Claude"},
		{ID: "4", LeftURL: "https://www.bilibili.com", RightURL: "https://www.zhihu.com", LeftLabel: "Bilibili", RightLabel: "知乎"},
	}
}

// FindBuiltinPreset returns the built-in preset with the given ID.
func FindBuiltinPreset(id PresetID) (*Preset, bool) {
	for _, p := range BuiltinPresets() {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
