package diag

import (
	"strconv"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"barsplit/core/engine"
)

const namespace = "barsplit"

// Summary is a point-in-time copy of the run totals.
type Summary struct {
	Reads      int64
	Skipped    int64
	Assigned   int64
	Unassigned int64
	Segments   int64
	Dropped    int64
}

// Metrics counts what the pipeline did, both as Prometheus series on a
// private registry and as plain totals for the end-of-run summary.
type Metrics struct {
	reg *prometheus.Registry

	reads      prometheus.Counter
	skipped    prometheus.Counter
	assigned   *prometheus.CounterVec
	unassigned prometheus.Counter
	segments   *prometheus.CounterVec
	dropped    prometheus.Counter

	nReads, nSkipped, nAssigned, nUnassigned, nSegments, nDropped atomic.Int64
}

// NewMetrics registers all series on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "reads_total",
			Help: "Reads processed.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "records_skipped_total",
			Help: "Malformed input records skipped.",
		}),
		assigned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "assignments_total",
			Help: "Reads assigned to a barcode.",
		}, []string{"barcode"}),
		unassigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "unassigned_total",
			Help: "Reads no barcode matched.",
		}),
		segments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "segments_total",
			Help: "Segments emitted.",
		}, []string{"strand"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "segments_dropped_total",
			Help: "Front/back adapter pairs dropped because the back preceded the front.",
		}),
	}
	m.reg.MustRegister(m.reads, m.skipped, m.assigned, m.unassigned, m.segments, m.dropped)
	return m
}

// Reads returns the reads counter (handy for testutil.ToFloat64).
func (m *Metrics) Reads() prometheus.Counter { return m.reads }

// Skipped returns the skipped-records counter.
func (m *Metrics) Skipped() prometheus.Counter { return m.skipped }

// Dropped returns the dropped-segments counter.
func (m *Metrics) Dropped() prometheus.Counter { return m.dropped }

// Assigned returns the per-barcode counter.
func (m *Metrics) Assigned(barcode string) prometheus.Counter {
	return m.assigned.WithLabelValues(barcode)
}

func (m *Metrics) RecordRead() {
	m.reads.Inc()
	m.nReads.Add(1)
}

func (m *Metrics) RecordSkip() {
	m.skipped.Inc()
	m.nSkipped.Add(1)
}

func (m *Metrics) RecordAssignment(a engine.Assignment) {
	if !a.Matched {
		m.unassigned.Inc()
		m.nUnassigned.Add(1)
		return
	}
	m.assigned.WithLabelValues(a.Pattern).Inc()
	m.nAssigned.Add(1)
}

func (m *Metrics) RecordSplit(r engine.SplitResult) {
	for _, s := range r.Segments {
		m.segments.WithLabelValues(strconv.Itoa(int(s.Strand))).Inc()
	}
	m.nSegments.Add(int64(len(r.Segments)))
	if r.Dropped > 0 {
		m.dropped.Add(float64(r.Dropped))
		m.nDropped.Add(int64(r.Dropped))
	}
}

// Summary returns the current totals.
func (m *Metrics) Summary() Summary {
	return Summary{
		Reads:      m.nReads.Load(),
		Skipped:    m.nSkipped.Load(),
		Assigned:   m.nAssigned.Load(),
		Unassigned: m.nUnassigned.Load(),
		Segments:   m.nSegments.Load(),
		Dropped:    m.nDropped.Load(),
	}
}

// WriteTextfile dumps all series in the Prometheus text format, for the
// node_exporter textfile collector or plain inspection.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
