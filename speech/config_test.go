package speech

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
	if cfg.CodeBlocks != "brief" {
		t.Errorf("default code_blocks should be brief, got %s", cfg.CodeBlocks)
	}
	if cfg.ReadOperators {
		t.Error("operators should be silent by default")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "case-insensitive enum",
			modify: func(c *Config) {
				c.CodeBlocks = "BRIEF"
			},
			wantErr: false,
		},
		{
			name: "invalid code blocks mode",
			modify: func(c *Config) {
				c.CodeBlocks = "verbose"
			},
			wantErr: true,
			errMsg:  "invalid code_blocks mode",
		},
		{
			name: "invalid url detail",
			modify: func(c *Config) {
				c.URLDetail = "everything"
			},
			wantErr: true,
			errMsg:  "invalid url_detail level",
		},
		{
			name: "invalid ip read mode",
			modify: func(c *Config) {
				c.IPRead = "octal"
			},
			wantErr: true,
			errMsg:  "invalid ip_read mode",
		},
		{
			name: "chunk length too small",
			modify: func(c *Config) {
				c.MaxChunkLen = 10
			},
			wantErr: true,
			errMsg:  "max_chunk_len must be between",
		},
		{
			name: "chunk length too large",
			modify: func(c *Config) {
				c.MaxChunkLen = 100000
			},
			wantErr: true,
			errMsg:  "max_chunk_len must be between",
		},
		{
			name: "empty custom term",
			modify: func(c *Config) {
				c.CustomTerms = map[string]string{" ": "слово"}
			},
			wantErr: true,
			errMsg:  "custom term",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error %q does not contain %q", err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigCanonicalizesCase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URLDetail = "DomainOnly"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.URLDetail != "domainOnly" {
		t.Errorf("URLDetail not canonicalized: %q", cfg.URLDetail)
	}
}

func TestLoadConfigFromViper(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()
	viper.Set("speech.url_detail", "minimal")
	viper.Set("speech.read_operators", true)
	viper.Set("speech.terms", map[string]string{"ruvox": "рувокс"})

	cfg, err := LoadConfigFromViper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.URLDetail != "minimal" {
		t.Errorf("URLDetail = %q", cfg.URLDetail)
	}
	if !cfg.ReadOperators {
		t.Error("ReadOperators not loaded")
	}
	if cfg.CodeBlocks != "brief" {
		t.Errorf("default CodeBlocks lost: %q", cfg.CodeBlocks)
	}
	if cfg.CustomTerms["ruvox"] != "рувокс" {
		t.Errorf("CustomTerms = %v", cfg.CustomTerms)
	}
}

func TestLoadConfigFromViperInvalid(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("speech.code_blocks", "verbose")
	if _, err := LoadConfigFromViper(); err == nil {
		t.Error("expected validation error")
	}
}

func TestNormalizeOptionsRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReadOperators = true
	opts := cfg.NormalizeOptions()
	if !opts.ReadOperators {
		t.Error("ReadOperators not carried over")
	}
	if string(opts.CodeBlockMode) != cfg.CodeBlocks {
		t.Errorf("CodeBlockMode = %q", opts.CodeBlockMode)
	}
}
