package main

import (
	"os"

	"github.com/Zamuhrishka/uglycontainers/internal/probestat"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Global flag values that are not bound into viper.
var (
	flagConfigFile string
)

var rootCmd = &cobra.Command{
	Use:   "probestat",
	Short: "Measure hash set probe lengths",
	Long: `probestat fills one hash set per collision resolution technique up to its
capacity and reports how many slots every insert and every lookup examined.
With --keys adversarial all keys share their first probe slot, which shows
how each technique copes with a crafted key set.`,
	SilenceUsage: true,
	RunE:         runProbestat,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfigFile, "config", "", "config file (default: ./probestat.yaml if present)")
	f.Int64(cfgKeyCapacity, defaultCapacity, "hash set capacity")
	f.Int64(cfgKeyElementSize, defaultElementSize, "key length in bytes")
	f.StringSlice(cfgKeyTechniques, defaultTechniques, "collision resolution techniques to measure")
	f.String(cfgKeyKeys, probestat.RandomKeys, "key set: random or adversarial")
	f.Int64(cfgKeySeed, defaultSeed, "key generator seed")
	f.String(cfgKeyOutput, probestat.FormatYAML, "output format: yaml or text")
	f.String(cfgKeyMetricsFile, "", "write Prometheus metrics to this file")
	f.String(cfgKeyLogLevel, "info", "log level")
}

// runProbestat loads the configuration, runs the measurement and writes the results.
func runProbestat(cmd *cobra.Command, args []string) error {
	v, err := loadConfig(flagConfigFile, cmd.Flags())
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	level, err := logrus.ParseLevel(v.GetString(cfgKeyLogLevel))
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}
	logrus.SetLevel(level)

	cfg, err := measurementConfig(v)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"capacity":   cfg.Capacity,
		"techniques": cfg.Techniques,
		"keys":       cfg.Keys,
	}).Debug("starting measurement")

	report, err := probestat.Run(cfg)
	if err != nil {
		return err
	}

	if err := probestat.Encode(os.Stdout, report, v.GetString(cfgKeyOutput)); err != nil {
		return errors.Wrap(err, "write report")
	}

	if metricsFile := v.GetString(cfgKeyMetricsFile); metricsFile != "" {
		if err := probestat.WriteMetrics(metricsFile, report); err != nil {
			return err
		}
		logrus.WithField("file", metricsFile).Info("metrics written")
	}

	return nil
}
