package report

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reportforge/reportforge/pkg/defaults"
)

// ErrInvalidStyleConfig wraps every style validation failure.
var ErrInvalidStyleConfig = errors.New("invalid style config")

// StyleConfig defines customizable report presentation settings.
// Configuration is loaded from YAML files to allow per-organization
// branding without touching report content.
type StyleConfig struct {
	// Name is the style identifier (e.g., "default", "acme")
	Name string `yaml:"name" json:"name"`

	// Branding customizes colors and company information
	Branding BrandingStyle `yaml:"branding" json:"branding"`

	// Page controls the PDF page geometry
	Page PageStyle `yaml:"page" json:"page"`
}

// BrandingStyle holds organization branding information.
type BrandingStyle struct {
	// CompanyName appears in the report header
	CompanyName string `yaml:"company_name" json:"company_name"`

	// AccentColor is the primary brand color (hex, e.g., "#667eea")
	AccentColor string `yaml:"accent_color" json:"accent_color"`

	// SecondaryColor is the gradient end color
	SecondaryColor string `yaml:"secondary_color" json:"secondary_color"`

	// FooterText appears at the bottom of each page
	FooterText string `yaml:"footer_text" json:"footer_text"`
}

// PageStyle controls PDF page geometry.
type PageStyle struct {
	// Size is the page size name: "Letter", "A4", or "Legal"
	Size string `yaml:"size" json:"size"`

	// Orientation is "P" (portrait) or "L" (landscape)
	Orientation string `yaml:"orientation" json:"orientation"`

	// Margin is the page margin in millimeters
	Margin float64 `yaml:"margin" json:"margin"`
}

// DefaultStyle returns the default presentation settings.
func DefaultStyle() *StyleConfig {
	return &StyleConfig{
		Name: "default",
		Branding: BrandingStyle{
			AccentColor:    "#667eea",
			SecondaryColor: "#764ba2",
		},
		Page: PageStyle{
			Size:        defaults.PageSize,
			Orientation: defaults.PageOrientation,
			Margin:      defaults.PageMargin,
		},
	}
}

// LoadStyle loads a style configuration from a YAML file. Fields the
// file omits keep their default values.
func LoadStyle(path string) (*StyleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style config: %w", err)
	}

	cfg := DefaultStyle()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStyleConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and reports every problem at once
// rather than stopping at the first.
func (c *StyleConfig) Validate() error {
	var errs []string

	switch c.Page.Size {
	case "Letter", "A4", "Legal":
	default:
		errs = append(errs, fmt.Sprintf("invalid page size %q: must be Letter, A4, or Legal", c.Page.Size))
	}

	switch c.Page.Orientation {
	case "P", "L":
	default:
		errs = append(errs, fmt.Sprintf("invalid orientation %q: must be P or L", c.Page.Orientation))
	}

	if c.Page.Margin <= 0 || c.Page.Margin > 50 {
		errs = append(errs, fmt.Sprintf("invalid margin %.1f: must be in (0, 50] mm", c.Page.Margin))
	}

	for _, color := range []struct{ name, value string }{
		{"accent_color", c.Branding.AccentColor},
		{"secondary_color", c.Branding.SecondaryColor},
	} {
		if color.value != "" && !validHexColor(color.value) {
			errs = append(errs, fmt.Sprintf("invalid %s %q: must be #rrggbb", color.name, color.value))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidStyleConfig, strings.Join(errs, "; "))
	}
	return nil
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
