package storefront

import (
	"fmt"
	"io"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v2"
)

type CMSConfig struct {
	BaseURL  string `yaml:"baseURL"`
	APIKey   string `yaml:"apiKey"`
	CacheTTL int    `yaml:"cacheTTL"`
}

// TTL returns the configured cache ttl, or zero if none was configured
func (cms CMSConfig) TTL() time.Duration {
	return time.Duration(cms.CacheTTL) * time.Second
}

type Features struct {
	Blog          bool `yaml:"blog"`
	Events        bool `yaml:"events"`
	LearningPaths bool `yaml:"learningPaths"`
}

type Brand struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Domains  []string `yaml:"domains"`
	Features Features `yaml:"features"`
}

type Config struct {
	CMS          CMSConfig `yaml:"cms"`
	DefaultBrand string    `yaml:"defaultBrand"`
	Brands       []Brand   `yaml:"brands"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the whole configuration and reports every problem found,
// not only the first one
func (cfg *Config) Validate() error {
	var result *multierror.Error

	err := validation.ValidateStruct(&cfg.CMS,
		validation.Field(&cfg.CMS.BaseURL, validation.Required, is.URL),
		validation.Field(&cfg.CMS.CacheTTL, validation.Min(0)),
	)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("cms: %w", err))
	}

	if len(cfg.Brands) == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one brand must be configured"))
	}

	seen := map[string]bool{}

	for idx := range cfg.Brands {
		b := &cfg.Brands[idx]

		err := validation.ValidateStruct(b,
			validation.Field(&b.ID, validation.Required),
			validation.Field(&b.Name, validation.Required),
			validation.Field(&b.Domains, validation.Each(is.Host)),
		)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("brand %d (%s): %w", idx, b.ID, err))
		}

		if b.ID != "" && seen[b.ID] {
			result = multierror.Append(result, fmt.Errorf("brand %s is configured more than once", b.ID))
		}
		seen[b.ID] = true
	}

	if cfg.DefaultBrand != "" && !seen[cfg.DefaultBrand] {
		result = multierror.Append(result, fmt.Errorf("default brand %s is not configured", cfg.DefaultBrand))
	}

	return result.ErrorOrNil()
}
