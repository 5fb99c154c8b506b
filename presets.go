package paint

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Preset is a named tool configuration, such as "Ink" or "Highlighter".
// Zero or nil fields leave the corresponding tool setting unchanged when
// the preset is applied.
type Preset struct {
	Name      string
	Tool      Tool
	Size      float64
	Color     *RGBA
	Opacity   *float64
	EraseMode EraseMode
}

// Apply copies the preset into ts. Size and opacity go through the same
// clamping as the toolbar setters.
func (p Preset) Apply(ts *ToolSettings) {
	ts.Tool = p.Tool
	ts.EraseMode = p.EraseMode
	if p.Size > 0 {
		ts.SetBrushSize(p.Size)
	}
	if p.Color != nil {
		ts.BrushColor = p.Color.Clamp()
	}
	if p.Opacity != nil {
		ts.SetBrushOpacity(*p.Opacity)
	}
}

// presetRecord is the on-disk form of a Preset, shared by the YAML and
// TOML loaders.
type presetRecord struct {
	Name    string       `yaml:"name" toml:"name"`
	Tool    string       `yaml:"tool" toml:"tool"`
	Size    float64      `yaml:"size" toml:"size"`
	Color   *presetColor `yaml:"color" toml:"color"`
	Opacity *float64     `yaml:"opacity" toml:"opacity"`
	Erase   string       `yaml:"erase" toml:"erase"`
}

// presetColor accepts a CSS color name or a hex string.
type presetColor RGBA

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *presetColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if err := c.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *presetColor) UnmarshalText(text []byte) error {
	rgba, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = presetColor(rgba)
	return nil
}

// LoadPresets decodes a YAML list of brush presets:
//
//	- name: Ink
//	  size: 3
//	  color: black
//	- name: Highlighter
//	  size: 16
//	  color: "#ffff0066"
//	  opacity: 0.5
//	- name: Soft eraser
//	  tool: eraser
//	  erase: alpha
//	  size: 12
//
// Unknown keys, unknown tool or erase names, missing names and duplicate
// names are rejected with ErrInvalidPreset. Empty input yields no presets.
func LoadPresets(r io.Reader) ([]Preset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw []presetRecord
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}
	return buildPresets(raw)
}

// LoadPresetsTOML decodes brush presets from a TOML document holding an
// array of preset tables:
//
//	[[preset]]
//	name = "Ink"
//	size = 3.0
//	color = "black"
//
//	[[preset]]
//	name = "Soft eraser"
//	tool = "eraser"
//	erase = "alpha"
//
// Validation is the same as for LoadPresets.
func LoadPresetsTOML(r io.Reader) ([]Preset, error) {
	var doc struct {
		Preset []presetRecord `toml:"preset"`
	}
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}
	if len(doc.Preset) == 0 {
		return nil, nil
	}
	return buildPresets(doc.Preset)
}

func buildPresets(raw []presetRecord) ([]Preset, error) {
	presets := make([]Preset, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, rp := range raw {
		p, err := rp.preset()
		if err != nil {
			return nil, fmt.Errorf("%w: preset %d: %w", ErrInvalidPreset, i, err)
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate preset %q", ErrInvalidPreset, p.Name)
		}
		seen[key] = true
		presets = append(presets, p)
	}
	Logger().Debug("brush presets loaded", "count", len(presets))
	return presets, nil
}

func (rp presetRecord) preset() (Preset, error) {
	p := Preset{Name: normalizeName(rp.Name), Size: rp.Size, Opacity: rp.Opacity}
	if p.Name == "" {
		return Preset{}, errors.New("missing name")
	}
	if !finite(rp.Size) || rp.Size < 0 {
		return Preset{}, fmt.Errorf("%q: invalid size %v", p.Name, rp.Size)
	}
	if rp.Color != nil {
		c := RGBA(*rp.Color)
		p.Color = &c
	}

	switch strings.ToLower(rp.Tool) {
	case "", "pen":
		p.Tool = ToolPen
	case "eraser":
		p.Tool = ToolEraser
	default:
		return Preset{}, fmt.Errorf("%q: unknown tool %q", p.Name, rp.Tool)
	}

	switch strings.ToLower(rp.Erase) {
	case "", "overpaint":
		p.EraseMode = EraseOverpaint
	case "alpha":
		p.EraseMode = EraseAlpha
	default:
		return Preset{}, fmt.Errorf("%q: unknown erase mode %q", p.Name, rp.Erase)
	}
	return p, nil
}
