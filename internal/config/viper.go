package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/solatis/rulebuilders/internal/types"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
func LoadConfig(configPath string) (*CatalogConfig, error) {
	v := viper.New()

	// Set defaults matching DefaultCatalogConfig
	d := DefaultCatalogConfig()
	v.SetDefault("catalog.first_ref", d.FirstRef)
	v.SetDefault("catalog.count", d.Count)
	v.SetDefault("catalog.last_name", d.LastName)
	v.SetDefault("catalog.legal_entity", d.LegalEntity)
	v.SetDefault("output.format", d.Format)

	// Bind environment variables with RB_ prefix
	v.SetEnvPrefix("RB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &CatalogConfig{
		FirstRef:    v.GetInt("catalog.first_ref"),
		Count:       v.GetInt("catalog.count"),
		LastName:    v.GetString("catalog.last_name"),
		LegalEntity: v.GetString("catalog.legal_entity"),
		Format:      strings.ToLower(v.GetString("output.format")),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks catalog bounds, required names and the output format.
func Validate(cfg *CatalogConfig) error {
	if cfg.FirstRef < 0 {
		return fmt.Errorf("first_ref must not be negative, got %d", cfg.FirstRef)
	}
	if cfg.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", cfg.Count)
	}
	if cfg.Count > types.MaxCatalogSize {
		return fmt.Errorf("count %d: %w", cfg.Count, types.ErrCatalogTooLarge)
	}
	if strings.TrimSpace(cfg.LastName) == "" {
		return fmt.Errorf("last_name must not be empty")
	}
	if strings.TrimSpace(cfg.LegalEntity) == "" {
		return fmt.Errorf("legal_entity must not be empty")
	}
	switch cfg.Format {
	case types.FormatJSON, types.FormatProto:
	default:
		return fmt.Errorf("format %q: %w", cfg.Format, types.ErrUnknownFormat)
	}
	return nil
}
