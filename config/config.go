//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

// Package config loads the store connection settings: region, access
// credentials and the mapping from logical table names to physical ones.
// Configuration comes from the environment, optionally seeded from .env
// files. It must be loaded before the store client is constructed,
// missing required fields are a startup-time failure.
package config

import (
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// environment prefix, e.g. KEYREC_REGION, KEYREC_TABLE_USERS
const envPrefix = "keyrec"

// Config carries the settings required to reach the store.
type Config struct {
	Region    string
	AccessKey string
	SecretKey string
	Tables    map[string]string
}

// Load reads configuration from .env, .env.local and KEYREC_* environment
// variables. The region is required. Table mappings are taken from
// KEYREC_TABLE_<LOGICAL>=<physical>.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Region:    v.GetString("region"),
		AccessKey: v.GetString("access-key"),
		SecretKey: v.GetString("secret-key"),
		Tables:    tablesFromEnv(),
	}

	if cfg.Region == "" {
		return nil, errors.New("region is not configured, set KEYREC_REGION")
	}

	return cfg, nil
}

// Table resolves the logical table name ("users") to the physical one.
func (cfg *Config) Table(logical string) (string, error) {
	physical, exists := cfg.Tables[strings.ToLower(logical)]
	if !exists {
		return "", errors.Errorf("no table configured for %q, set KEYREC_TABLE_%s", logical, strings.ToUpper(logical))
	}

	return physical, nil
}

// AWS builds a client configuration honoring the region and, when set,
// the static credentials.
func (cfg *Config) AWS(ctx context.Context) (aws.Config, error) {
	loaders := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		loaders = append(loaders, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	c, err := awsconfig.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "unable to load aws config")
	}

	return c, nil
}

func tablesFromEnv() map[string]string {
	prefix := strings.ToUpper(envPrefix) + "_TABLE_"

	tables := map[string]string{}
	for _, env := range os.Environ() {
		key, val, found := strings.Cut(env, "=")
		if !found || !strings.HasPrefix(key, prefix) || val == "" {
			continue
		}
		tables[strings.ToLower(strings.TrimPrefix(key, prefix))] = val
	}

	return tables
}
