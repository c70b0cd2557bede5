package storefront

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/WizzAIWig/dcg-websites/pkg/drupal"
	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out storefront_mock.go . Storefront

// Storefront knows the configured brands and hands out one CMS client per brand
type Storefront interface {
	Brands() []Brand
	BrandBySlug(slug string) (Brand, bool)
	BrandByHost(host string) (Brand, bool)
	Client(brandID string) (drupal.Client, error)
}

type storefrontApp struct {
	brands       []Brand
	defaultBrand string
	clients      map[string]drupal.Client
}

func New(ctx context.Context, cfg Config, options ...drupal.Option) (Storefront, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logging.GetFromContext(ctx)

	app := &storefrontApp{
		brands:       cfg.Brands,
		defaultBrand: cfg.DefaultBrand,
		clients:      make(map[string]drupal.Client, len(cfg.Brands)),
	}

	for _, b := range cfg.Brands {
		brandOptions := []drupal.Option{
			drupal.Brand(b.ID),
			drupal.APIKey(cfg.CMS.APIKey),
		}

		if ttl := cfg.CMS.TTL(); ttl > 0 {
			brandOptions = append(brandOptions, drupal.CacheTTL(ttl))
		}

		app.clients[b.ID] = drupal.New(cfg.CMS.BaseURL, append(brandOptions, options...)...)

		log.Info("brand configured", "brand", b.ID, "domains", strings.Join(b.Domains, ","))
	}

	return app, nil
}

func (app *storefrontApp) Brands() []Brand {
	return append([]Brand{}, app.brands...)
}

func (app *storefrontApp) BrandBySlug(slug string) (Brand, bool) {
	for _, b := range app.brands {
		if b.ID == slug {
			return b, true
		}
	}
	return Brand{}, false
}

// BrandByHost finds the brand serving host, matching configured domains
// exactly or as a parent domain. Unknown hosts map to the default brand
// when one is configured.
func (app *storefrontApp) BrandByHost(host string) (Brand, bool) {
	host = strings.ToLower(strings.TrimSuffix(stripPort(host), "."))

	for _, b := range app.brands {
		for _, domain := range b.Domains {
			domain = strings.ToLower(domain)
			if host == domain || strings.HasSuffix(host, "."+domain) {
				return b, true
			}
		}
	}

	if app.defaultBrand != "" {
		return app.BrandBySlug(app.defaultBrand)
	}

	return Brand{}, false
}

func (app *storefrontApp) Client(brandID string) (drupal.Client, error) {
	c, ok := app.clients[brandID]
	if !ok {
		return nil, errors.NewUnknownBrandError(fmt.Sprintf("brand %s is not configured", brandID))
	}
	return c, nil
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
