// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `.env` file at `<root>/conf/.env`.
  2. A YAML file: the explicit path passed in, else `conf/contactform.yaml`
     found by climbing from the working directory.  Running without any
     file is fine; defaults cover every key.
  3. Environment variables prefixed `CONTACTFORM_`, where `__` maps to “.”
     (e.g., `CONTACTFORM_ENDPOINT__URL → endpoint.url`).

After merging, the tree is unmarshalled into typed structs, defaulted, and
validated.  The caller owns the result; flag overrides are applied to it
directly.

Instrumentation
---------------
  • DEBUG: root discovery, YAML read.
  • ERROR: YAML parse, env overlay, unmarshal, validation failures.
  • INFO:  final “config loaded” with key highlights.
  • Logs use the global sugared logger (`zap.S()`), which is a no-op until
    logger.New installs the real one.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const (
	envPrefix   = "CONTACTFORM_"
	defaultFile = "contactform.yaml"
)

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves CONTACTFORM_ROOT or climbs directories until
// conf/contactform.yaml is found.  Falls back to the working directory.
func rootDir() string {
	if r := os.Getenv(envPrefix + "ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", defaultFile)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, and env overrides, then validates and caches the
// result.  path may be "" to use discovery.
func Load(path string) (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := path
	if yamlPath == "" {
		candidate := filepath.Join(root, "conf", defaultFile)
		if _, err := os.Stat(candidate); err == nil {
			yamlPath = candidate
		}
	}
	if yamlPath != "" {
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
			return nil, fmt.Errorf("load %s: %w", yamlPath, err)
		}
		zap.S().Debugw("config yaml loaded", "file", yamlPath)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, envPrefix), "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	cfg.Paths = Paths{Root: root, File: yamlPath}
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	zap.S().Infow("config loaded",
		"endpoint", cfg.Endpoint.URL,
		"timeout", cfg.Endpoint.Timeout,
		"file", cfg.Paths.File,
	)
	return &cfg, nil
}
