package panel

import (
	"strings"
	"testing"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

func TestPanelTemplateColors(t *testing.T) {
	var tests = []struct {
		theme string
		color int
	}{
		{"gta", 0xFF6B6B},
		{"community", 0x4A90E2},
		{"friends", 0x32CD32},
		{"dev", 0x7289DA},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			p := PanelTemplate(tt.theme, "Guild", "")
			if p.Color != tt.color {
				t.Errorf("color = %#x, want %#x", p.Color, tt.color)
			}
			if len(p.Options) != 3 {
				t.Errorf("len(Options) = %d, want 3", len(p.Options))
			}
		})
	}
}

func TestPanelTemplateUsesGuildName(t *testing.T) {
	p := PanelTemplate("gta", "Cidade Alta", "https://icon")
	if !strings.Contains(p.Title, "Cidade Alta") {
		t.Errorf("Title = %q", p.Title)
	}
	if p.ThumbnailURL != "https://icon" {
		t.Errorf("ThumbnailURL = %q", p.ThumbnailURL)
	}
}

func TestPanelTemplateUnknownFallsBack(t *testing.T) {
	p := PanelTemplate("nope", "Guild", "")
	if p.Title != "Support Yoloo Cloud" {
		t.Errorf("Title = %q", p.Title)
	}
}

func TestApplyTemplatePreservesStructuralFlags(t *testing.T) {
	p := guildconfig.PanelDefinition{
		PanelType:      "simple",
		AdvancedConfig: true,
		Title:          "Old",
	}
	ApplyTemplate(&p, PanelTemplate("dev", "Guild", ""))

	if p.PanelType != "simple" {
		t.Errorf("PanelType = %q, template must not change it", p.PanelType)
	}
	if !p.AdvancedConfig {
		t.Error("AdvancedConfig must survive the template merge")
	}
	if p.Color != 0x7289DA {
		t.Errorf("Color = %#x, visual fields should be replaced", p.Color)
	}
	if p.Title == "Old" {
		t.Error("Title should be replaced by the template")
	}
}
