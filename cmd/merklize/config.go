package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"xdao.co/merklize/compliance"
)

const (
	cfgKeyHasher       = "hasher"
	cfgKeyMode         = "mode"
	cfgKeyWorkers      = "workers"
	cfgKeyStoreBackend = "store.backend"
	cfgKeyStorePath    = "store.path"
	cfgKeyStoreList    = "store.backends"

	defaultHasher       = "poseidon"
	defaultMode         = "permissive"
	defaultStoreBackend = "localfs"
	defaultStorePath    = ".merklize-cas"
)

// backendConfig is one entry of store.backends. Reads fall back in list order
// and writes go to the first entry.
type backendConfig struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
}

type config struct {
	Hasher   string
	Mode     compliance.ComplianceMode
	Workers  int
	Backends []backendConfig
}

// loadConfig merges, from lowest to highest precedence: defaults, the optional
// YAML config file, MERKLIZE_* environment variables, and flags that were set
// explicitly on the command line.
func loadConfig(path string, flags *pflag.FlagSet) (*config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyHasher, defaultHasher)
	v.SetDefault(cfgKeyMode, defaultMode)
	v.SetDefault(cfgKeyWorkers, 0)
	v.SetDefault(cfgKeyStoreBackend, defaultStoreBackend)
	v.SetDefault(cfgKeyStorePath, defaultStorePath)

	v.SetEnvPrefix("MERKLIZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for key, flag := range map[string]string{
		cfgKeyHasher:       "hasher",
		cfgKeyMode:         "mode",
		cfgKeyWorkers:      "workers",
		cfgKeyStoreBackend: "store-backend",
		cfgKeyStorePath:    "store-path",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	mode, err := compliance.Parse(v.GetString(cfgKeyMode))
	if err != nil {
		return nil, err
	}
	cfg := &config{
		Hasher:  v.GetString(cfgKeyHasher),
		Mode:    mode,
		Workers: v.GetInt(cfgKeyWorkers),
	}
	if err := v.UnmarshalKey(cfgKeyStoreList, &cfg.Backends); err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfgKeyStoreList, err)
	}
	if len(cfg.Backends) == 0 || flags.Changed("store-backend") || flags.Changed("store-path") {
		cfg.Backends = []backendConfig{{Name: v.GetString(cfgKeyStoreBackend), Path: v.GetString(cfgKeyStorePath)}}
	}
	for i, b := range cfg.Backends {
		if b.Name == "" || b.Path == "" {
			return nil, fmt.Errorf("store backend %d: name and path are required", i)
		}
	}
	return cfg, nil
}
