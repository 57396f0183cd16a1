package speech

import (
	"fmt"
	"strings"

	"github.com/xilec/ruvox/speech/normalize"
)

// Config is the user-facing configuration surface: the normalization
// options plus the chunking bound, with string-typed enums as they
// appear in the YAML config file.
type Config struct {
	CodeBlocks    string `yaml:"code_blocks"`
	URLDetail     string `yaml:"url_detail"`
	ReadOperators bool   `yaml:"read_operators"`
	IPRead        string `yaml:"ip_read"`
	MaxChunkLen   int    `yaml:"max_chunk_len"`

	CustomTerms         map[string]string `yaml:"terms"`
	CustomAbbreviations map[string]string `yaml:"abbreviations"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CodeBlocks:    string(normalize.CodeBlockBrief),
		URLDetail:     string(normalize.URLDetailDomainOnly),
		ReadOperators: false,
		IPRead:        string(normalize.IPReadNumbers),
		MaxChunkLen:   DefaultChunkLen,
	}
}

// Validate checks if the configuration is valid and folds enum values
// to their canonical case.
func (c *Config) Validate() error {
	validCodeBlocks := []string{string(normalize.CodeBlockFull), string(normalize.CodeBlockBrief)}
	if !foldInto(&c.CodeBlocks, validCodeBlocks) {
		return fmt.Errorf("invalid code_blocks mode '%s': must be one of %v", c.CodeBlocks, validCodeBlocks)
	}

	validURLDetail := []string{
		string(normalize.URLDetailFull),
		string(normalize.URLDetailDomainOnly),
		string(normalize.URLDetailMinimal),
	}
	if !foldInto(&c.URLDetail, validURLDetail) {
		return fmt.Errorf("invalid url_detail level '%s': must be one of %v", c.URLDetail, validURLDetail)
	}

	validIPRead := []string{string(normalize.IPReadNumbers), string(normalize.IPReadDigits)}
	if !foldInto(&c.IPRead, validIPRead) {
		return fmt.Errorf("invalid ip_read mode '%s': must be one of %v", c.IPRead, validIPRead)
	}

	if c.MaxChunkLen < MinChunkLen || c.MaxChunkLen > MaxChunkLen {
		return fmt.Errorf("max_chunk_len must be between %d and %d, got %d", MinChunkLen, MaxChunkLen, c.MaxChunkLen)
	}

	for term, spoken := range c.CustomTerms {
		if strings.TrimSpace(term) == "" || strings.TrimSpace(spoken) == "" {
			return fmt.Errorf("custom term entries cannot be empty")
		}
	}
	for abbr, expansion := range c.CustomAbbreviations {
		if strings.TrimSpace(abbr) == "" || strings.TrimSpace(expansion) == "" {
			return fmt.Errorf("custom abbreviation entries cannot be empty")
		}
	}

	return nil
}

// foldInto matches v case-insensitively against valid values and
// canonicalizes it in place on success.
func foldInto(v *string, valid []string) bool {
	for _, candidate := range valid {
		if strings.EqualFold(*v, candidate) {
			*v = candidate
			return true
		}
	}
	return false
}

// NormalizeOptions converts the config to normalizer options.
func (c Config) NormalizeOptions() normalize.Options {
	return normalize.Options{
		CodeBlockMode:       normalize.CodeBlockMode(c.CodeBlocks),
		URLDetail:           normalize.URLDetail(c.URLDetail),
		ReadOperators:       c.ReadOperators,
		IPReadMode:          normalize.IPReadMode(c.IPRead),
		CustomTerms:         c.CustomTerms,
		CustomAbbreviations: c.CustomAbbreviations,
	}
}
