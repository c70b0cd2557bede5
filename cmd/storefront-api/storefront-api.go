package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/WizzAIWig/dcg-websites/internal/pkg/application/storefront"
	"github.com/WizzAIWig/dcg-websites/internal/pkg/infrastructure/router"
	contentapi "github.com/WizzAIWig/dcg-websites/internal/pkg/presentation/api/content-api"
	"github.com/WizzAIWig/dcg-websites/internal/pkg/presentation/api/content-api/auth"
	"github.com/WizzAIWig/dcg-websites/pkg/drupal"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "storefront-api"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	flags := DefaultFlags(ctx)

	brandsConfig, err := os.Open(flags[brandsConfigPath])
	if err != nil {
		log.Error("failed to open brand configuration", "path", flags[brandsConfigPath], "err", err.Error())
		os.Exit(1)
	}
	defer brandsConfig.Close()

	policies, err := os.Open(flags[opaPath])
	if err != nil {
		log.Error("failed to open authz policies", "path", flags[opaPath], "err", err.Error())
		os.Exit(1)
	}
	defer policies.Close()

	handler, err := initialize(ctx, flags, brandsConfig, policies)
	if err != nil {
		log.Error("failed to initialize service", "err", err.Error())
		os.Exit(1)
	}

	log.Info("starting to listen for connections", "port", flags[servicePort])

	err = http.ListenAndServe(":"+flags[servicePort], handler)
	if err != nil {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

func initialize(ctx context.Context, flags FlagMap, brandsConfig, policies io.Reader) (http.Handler, error) {
	cfg, err := storefront.LoadConfiguration(brandsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load brand configuration: %w", err)
	}

	if flags[apiKey] != "" {
		cfg.CMS.APIKey = flags[apiKey]
	}

	app, err := storefront.New(ctx, *cfg, drupal.Debug(flags[debugMode]))
	if err != nil {
		return nil, err
	}

	authz, err := auth.NewAuthorizer(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authorizer: %w", err)
	}

	r := router.New(serviceName)
	contentapi.RegisterHandlers(ctx, r, authz, app)

	return r, nil
}
