package config

import (
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/samples/splice", "/samples/splice"},
		{"single trailing slash", "/samples/splice/", "/samples/splice"},
		{"multiple trailing slashes", "/samples/splice///", "/samples/splice"},
		{"root stays root", "/", "/"},
		{"relative path", "packs/", "packs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDirArg(tt.in); got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults missing paths", func(c *Config) {}, true},
		{"both paths set", func(c *Config) {
			c.SourceDir = "/in"
			c.DestDir = "/out"
		}, false},
		{"missing destination", func(c *Config) { c.SourceDir = "/in" }, true},
		{"check mode needs no paths", func(c *Config) { c.CheckOnly = true }, false},
		{"analyze needs only source", func(c *Config) {
			c.AnalyzeOnly = true
			c.SourceDir = "/in"
		}, false},
		{"analyze without source", func(c *Config) { c.AnalyzeOnly = true }, true},
		{"invalid color mode", func(c *Config) {
			c.SourceDir = "/in"
			c.DestDir = "/out"
			c.ColorMode = "sometimes"
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePaths(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name    string
		source  string
		dest    string
		wantErr bool
	}{
		{"dest outside source", "/samples/in", "/samples/out", false},
		{"dest equals source", "/samples/in", "/samples/in", true},
		{"dest inside source", "/samples/in", "/samples/in/sorted", true},
		{"sibling with common prefix", "/samples/in", "/samples/in2", false},
		{"source inside dest is fine", "/samples/out/in", "/samples/out", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.ValidatePaths(tt.source, tt.dest)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.source, tt.dest, err, tt.wantErr)
			}
		})
	}
}
