package main

import (
	"strings"

	"github.com/Zamuhrishka/uglycontainers/internal/probestat"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "probestat"
	configFileType = "yaml"
	envPrefix      = "PROBESTAT"

	cfgKeyCapacity    = "capacity"
	cfgKeyElementSize = "element-size"
	cfgKeyTechniques  = "techniques"
	cfgKeyKeys        = "keys"
	cfgKeySeed        = "seed"
	cfgKeyOutput      = "output"
	cfgKeyMetricsFile = "metrics-file"
	cfgKeyLogLevel    = "log-level"

	defaultCapacity    = 1000
	defaultElementSize = 8
	defaultSeed        = 1
)

var defaultTechniques = []string{"SeedPerturbation", "QuadraticProbing", "LinearProbing", "DoubleHashing"}

// loadConfig builds the configuration with precedence flag > PROBESTAT_* env > config file > default.
// A missing config file is only an error when one was named explicitly.
func loadConfig(configFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, errors.Wrap(err, "read config")
	}

	return v, nil
}

// measurementConfig decodes the measurement parameters from v, the key set name is lower cased.
func measurementConfig(v *viper.Viper) (probestat.Config, error) {
	var cfg probestat.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	cfg.Keys = strings.ToLower(cfg.Keys)

	return cfg, nil
}
