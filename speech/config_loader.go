package speech

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadConfigFromViper loads speech configuration from Viper, starting
// from the defaults and validating the result.
func LoadConfigFromViper() (Config, error) {
	cfg := DefaultConfig()

	if viper.IsSet("speech.code_blocks") {
		cfg.CodeBlocks = viper.GetString("speech.code_blocks")
	}
	if viper.IsSet("speech.url_detail") {
		cfg.URLDetail = viper.GetString("speech.url_detail")
	}
	if viper.IsSet("speech.read_operators") {
		cfg.ReadOperators = viper.GetBool("speech.read_operators")
	}
	if viper.IsSet("speech.ip_read") {
		cfg.IPRead = viper.GetString("speech.ip_read")
	}
	if viper.IsSet("speech.max_chunk_len") {
		cfg.MaxChunkLen = viper.GetInt("speech.max_chunk_len")
	}
	if viper.IsSet("speech.terms") {
		cfg.CustomTerms = viper.GetStringMapString("speech.terms")
	}
	if viper.IsSet("speech.abbreviations") {
		cfg.CustomAbbreviations = viper.GetStringMapString("speech.abbreviations")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid speech configuration: %w", err)
	}
	return cfg, nil
}

// SetDefaults sets default values in Viper for speech configuration.
func SetDefaults() {
	defaults := DefaultConfig()

	viper.SetDefault("speech.code_blocks", defaults.CodeBlocks)
	viper.SetDefault("speech.url_detail", defaults.URLDetail)
	viper.SetDefault("speech.read_operators", defaults.ReadOperators)
	viper.SetDefault("speech.ip_read", defaults.IPRead)
	viper.SetDefault("speech.max_chunk_len", defaults.MaxChunkLen)
}
