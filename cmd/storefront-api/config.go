package main

import (
	"context"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	servicePort FlagType = iota

	brandsConfigPath
	opaPath

	apiKey
	debugMode
)

func DefaultFlags(ctx context.Context) FlagMap {
	return FlagMap{
		servicePort:      env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080"),
		brandsConfigPath: env.GetVariableOrDefault(ctx, "BRANDS_CONFIG_PATH", "/opt/dcg/config/brands.yaml"),
		opaPath:          env.GetVariableOrDefault(ctx, "POLICIES_PATH", "/opt/dcg/config/authz.rego"),
		apiKey:           env.GetVariableOrDefault(ctx, "DRUPAL_API_KEY", ""),
		debugMode:        env.GetVariableOrDefault(ctx, "DRUPAL_DEBUG", "false"),
	}
}
