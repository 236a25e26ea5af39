// Package probestat measures how long the probe sequences of a hash set get for each collision resolution
// technique, with random keys or with a crafted key set whose first probes all land in the same slot.
package probestat

import (
	"math/rand"
	"sort"

	"github.com/Zamuhrishka/uglycontainers/crt"
	"github.com/Zamuhrishka/uglycontainers/hashset"
	"github.com/Zamuhrishka/uglycontainers/internal/conf"
	"github.com/Zamuhrishka/uglycontainers/internal/hash"
	"github.com/Zamuhrishka/uglycontainers/internal/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("module", "probestat")

// RandomKeys - Key set of uniformly random keys
const RandomKeys = "random"

// AdversarialKeys - Key set where every key has the same first probe slot
const AdversarialKeys = "adversarial"

// minAdversarialElementSize - Below this many bytes there are too few distinct keys to find enough collisions
const minAdversarialElementSize int64 = 4

// Config - Parameters of one measurement run
//   - Capacity is the hash set capacity, the set is filled up to it
//   - ElementSize is the key length
//   - Techniques are the crt names to measure
//   - Keys is RandomKeys or AdversarialKeys
//   - Seed seeds the key generator
type Config struct {
	Capacity    int64    `mapstructure:"capacity" yaml:"capacity"`
	ElementSize int64    `mapstructure:"element-size" yaml:"element_size"`
	Techniques  []string `mapstructure:"techniques" yaml:"techniques"`
	Keys        string   `mapstructure:"keys" yaml:"keys"`
	Seed        int64    `mapstructure:"seed" yaml:"seed"`
}

// ProbeSummary - Distribution of the number of slots examined per operation
type ProbeSummary struct {
	Mean float64 `yaml:"mean"`
	P99  int64   `yaml:"p99"`
	Max  int64   `yaml:"max"`
}

// TechniqueReport - Result for one collision resolution technique
type TechniqueReport struct {
	Technique    string       `yaml:"technique"`
	MaxSize      int64        `yaml:"max_size"`
	Inserted     int64        `yaml:"inserted"`
	Exhausted    int64        `yaml:"exhausted"`
	Insert       ProbeSummary `yaml:"insert"`
	Lookup       ProbeSummary `yaml:"lookup"`
	InsertProbes []int64      `yaml:"-"`
	LookupProbes []int64      `yaml:"-"`
}

// Report - Result of a measurement run
type Report struct {
	Capacity    int64             `yaml:"capacity"`
	ElementSize int64             `yaml:"element_size"`
	Keys        string            `yaml:"keys"`
	Seed        int64             `yaml:"seed"`
	Techniques  []TechniqueReport `yaml:"techniques"`
}

// Run - Fills one hash set per technique with the configured key set and measures every insert and lookup
func Run(cfg Config) (report Report, err error) {
	if cfg.Capacity <= 0 {
		err = errors.Errorf("capacity must be a positive value higher than 0 (zero), got %d", cfg.Capacity)
		return
	}
	if cfg.ElementSize <= 0 {
		err = errors.Errorf("element size must be a positive value higher than 0 (zero), got %d", cfg.ElementSize)
		return
	}
	if cfg.Keys != RandomKeys && cfg.Keys != AdversarialKeys {
		err = errors.Errorf("unknown key set %q, should be %q or %q", cfg.Keys, RandomKeys, AdversarialKeys)
		return
	}
	if cfg.Keys == AdversarialKeys && cfg.ElementSize < minAdversarialElementSize {
		err = errors.Errorf("adversarial keys need an element size of at least %d", minAdversarialElementSize)
		return
	}

	report = Report{
		Capacity:    cfg.Capacity,
		ElementSize: cfg.ElementSize,
		Keys:        cfg.Keys,
		Seed:        cfg.Seed,
	}

	var tr TechniqueReport
	for _, name := range cfg.Techniques {
		technique, ok := crt.Parse(name)
		if !ok {
			err = errors.Errorf("unknown collision resolution technique %q", name)
			return
		}

		tr, err = measure(cfg, technique)
		if err != nil {
			err = errors.Wrapf(err, "error while measuring %s", name)
			return
		}
		report.Techniques = append(report.Techniques, tr)
	}

	return
}

// measure - Runs the measurement for one technique
func measure(cfg Config, technique int) (tr TechniqueReport, err error) {
	hs, info, err := hashset.New(hashset.Conf{
		Capacity:                     cfg.Capacity,
		ElementSize:                  cfg.ElementSize,
		CollisionResolutionTechnique: technique,
	})
	if err != nil {
		return
	}
	defer hs.Delete()

	keys, err := generateKeys(cfg, technique)
	if err != nil {
		return
	}

	tr = TechniqueReport{Technique: crt.Name(technique), MaxSize: info.MaxSize}

	inserted := make([][]byte, 0, len(keys))
	for _, key := range keys {
		err = hs.Insert(key)
		tr.InsertProbes = append(tr.InsertProbes, hs.GetStats().LastProbe)
		if errors.Is(err, crt.ProbingExhausted{}) {
			tr.Exhausted++
			err = nil
			continue
		}
		if err != nil {
			return
		}
		inserted = append(inserted, key)
	}
	tr.Inserted = int64(len(inserted))

	var exists bool
	for _, key := range inserted {
		exists, err = hs.Contains(key)
		if err != nil {
			return
		}
		if !exists {
			err = errors.Errorf("inserted key %x not found", key)
			return
		}
		tr.LookupProbes = append(tr.LookupProbes, hs.GetStats().LastProbe)
	}

	tr.Insert = summarize(tr.InsertProbes)
	tr.Lookup = summarize(tr.LookupProbes)

	logger.WithFields(logrus.Fields{
		"technique": tr.Technique,
		"inserted":  tr.Inserted,
		"exhausted": tr.Exhausted,
		"maxInsert": tr.Insert.Max,
	}).Debug("technique measured")

	return
}

// generateKeys - Returns Capacity distinct keys of the configured key set
func generateKeys(cfg Config, technique int) (keys [][]byte, err error) {
	rnd := rand.New(rand.NewSource(cfg.Seed))
	seen := make(map[string]struct{}, cfg.Capacity)

	// Same algorithm as the hash set uses internally, to find keys sharing the first slot
	ha, err := hash.New(technique, utils.WithHeadroom(cfg.Capacity, conf.HeadroomPercent), conf.DefaultSeed)
	if err != nil {
		return
	}
	var target int64 = -1

	attempts := cfg.Capacity * ha.GetTableSize() * 20
	for i := int64(0); int64(len(keys)) < cfg.Capacity; i++ {
		if i >= attempts {
			err = errors.Errorf("found only %d of %d distinct keys after %d attempts", len(keys), cfg.Capacity, attempts)
			return
		}

		key := make([]byte, cfg.ElementSize)
		_, _ = rnd.Read(key)
		if _, dup := seen[string(key)]; dup {
			continue
		}

		if cfg.Keys == AdversarialKeys {
			slot := ha.HashFunc1(key)
			if target < 0 {
				target = slot
			}
			if slot != target {
				continue
			}
		}

		seen[string(key)] = struct{}{}
		keys = append(keys, key)
	}

	return
}

// summarize - Returns mean, 99th percentile and max of samples
func summarize(samples []int64) (summary ProbeSummary) {
	if len(samples) == 0 {
		return
	}

	sorted := make([]int64, len(samples))
	_ = copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total int64
	for _, v := range sorted {
		total += v
	}

	summary.Mean = float64(total) / float64(len(sorted))
	summary.P99 = sorted[(len(sorted)*99+99)/100-1]
	summary.Max = sorted[len(sorted)-1]

	return
}
