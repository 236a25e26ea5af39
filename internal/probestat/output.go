package probestat

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"
)

// FormatYAML - Report rendered as a YAML document
const FormatYAML = "yaml"

// FormatText - Report rendered as an aligned table
const FormatText = "text"

// Encode - Writes report to w in the given format
func Encode(w io.Writer, report Report, format string) (err error) {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(report)
		if err == nil {
			err = enc.Close()
		}
	case FormatText:
		err = encodeText(w, report)
	default:
		err = errors.Errorf("unknown output format %q, should be %q or %q", format, FormatYAML, FormatText)
	}

	return
}

// encodeText - Writes one row per technique
func encodeText(w io.Writer, report Report) (err error) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, err = fmt.Fprintf(tw, "capacity %d, element size %d, %s keys, seed %d\n",
		report.Capacity, report.ElementSize, report.Keys, report.Seed)
	if err != nil {
		return
	}
	_, err = fmt.Fprintln(tw, "TECHNIQUE\tMAX SIZE\tINSERTED\tEXHAUSTED\tINSERT MEAN\tINSERT P99\tINSERT MAX\tLOOKUP MEAN\tLOOKUP P99\tLOOKUP MAX")
	if err != nil {
		return
	}

	for _, tr := range report.Techniques {
		_, err = fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2f\t%d\t%d\t%.2f\t%d\t%d\n",
			tr.Technique, tr.MaxSize, tr.Inserted, tr.Exhausted,
			tr.Insert.Mean, tr.Insert.P99, tr.Insert.Max,
			tr.Lookup.Mean, tr.Lookup.P99, tr.Lookup.Max)
		if err != nil {
			return
		}
	}

	return tw.Flush()
}

// NewRegistry - Returns a registry with the probe length histogram and max gauge filled from report
func NewRegistry(report Report) (registry *prometheus.Registry, err error) {
	probeLength := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "uglycontainers",
		Subsystem: "hashset",
		Name:      "probe_length",
		Help:      "Number of slots examined per hash set operation",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"technique", "operation"})
	probeLengthMax := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "uglycontainers",
		Subsystem: "hashset",
		Name:      "probe_length_max",
		Help:      "Longest probe sequence seen per hash set operation",
	}, []string{"technique", "operation"})
	exhausted := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "uglycontainers",
		Subsystem: "hashset",
		Name:      "probing_exhausted",
		Help:      "Inserts that found no usable slot on their probe sequence",
	}, []string{"technique"})

	registry = prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{probeLength, probeLengthMax, exhausted} {
		err = registry.Register(c)
		if err != nil {
			err = errors.Wrap(err, "error while registering collector")
			return
		}
	}

	for _, tr := range report.Techniques {
		for _, v := range tr.InsertProbes {
			probeLength.WithLabelValues(tr.Technique, "insert").Observe(float64(v))
		}
		for _, v := range tr.LookupProbes {
			probeLength.WithLabelValues(tr.Technique, "lookup").Observe(float64(v))
		}
		probeLengthMax.WithLabelValues(tr.Technique, "insert").Set(float64(tr.Insert.Max))
		probeLengthMax.WithLabelValues(tr.Technique, "lookup").Set(float64(tr.Lookup.Max))
		exhausted.WithLabelValues(tr.Technique).Set(float64(tr.Exhausted))
	}

	return
}

// WriteMetrics - Writes the metrics of report to fileName in the Prometheus text format
func WriteMetrics(fileName string, report Report) (err error) {
	registry, err := NewRegistry(report)
	if err != nil {
		return
	}

	err = prometheus.WriteToTextfile(fileName, registry)
	if err != nil {
		err = errors.Wrapf(err, "error while writing metrics to %s", fileName)
	}

	return
}
