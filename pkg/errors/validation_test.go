package errors

import (
	"strings"
	"testing"
)

func TestValidateThemePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid", "themes/midnight.toml", false},
		{"valid absolute", "/etc/doodle/theme.toml", false},
		{"empty", "", true},
		{"wrong extension", "theme.yaml", true},
		{"control character", "the\tme.toml", true},
		{"null byte", "theme\x00.toml", true},
		{"too long", strings.Repeat("a", 501) + ".toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThemePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateThemePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid", "out/tile.svg", false},
		{"empty", "", true},
		{"control character", "out\x01.svg", true},
		{"too long", strings.Repeat("b", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		color   string
		wantErr bool
	}{
		{"#6366F1", false},
		{"#abcdef", false},
		{"#000000", false},
		{"6366F1", true},
		{"#GGGGGG", true},
		{"#FFF", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			err := ValidateHexColor(tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}
