package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"yomu/internal/models"
)

var (
	termLookupDesc = prometheus.NewDesc(
		"yomu_term_lookups_total",
		"Total dictionary term lookup count by outcome",
		[]string{"term", "outcome"},
		nil,
	)
)

// Store persists term lookup counts.
type Store interface {
	IncrementTermLookup(ctx context.Context, term, outcome string) error
	GetAllTermLookups(ctx context.Context) ([]models.TermLookup, error)
}

// TermCollector is a custom Prometheus collector that reads term lookup
// counts from the database on each scrape.
type TermCollector struct {
	store Store
}

// NewTermCollector creates a collector over store.
func NewTermCollector(store Store) *TermCollector {
	return &TermCollector{store: store}
}

// Describe sends the metric descriptor to the channel.
func (c *TermCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- termLookupDesc
}

// Collect queries the database for all term lookups and emits them as counters.
func (c *TermCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllTermLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect term lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			termLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Term,
			l.Outcome,
		)
	}
}

// Recorder provides async term lookup recording.
type Recorder struct {
	store Store
	wg    sync.WaitGroup
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record asynchronously records a term lookup outcome.
func (r *Recorder) Record(term, outcome string) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.store.IncrementTermLookup(context.Background(), term, outcome); err != nil {
			slog.Error("failed to record term lookup", "term", term, "outcome", outcome, "error", err)
		}
	}()
}

// Wait blocks until all pending records are written.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(store Store) {
	recorderOnce.Do(func() {
		recorder = NewRecorder(store)
		prometheus.MustRegister(NewTermCollector(store))
	})
}

// RecordTermLookup asynchronously records a term lookup outcome.
// It is a no-op until Init has been called.
func RecordTermLookup(term, outcome string) {
	if recorder == nil {
		return
	}
	recorder.Record(term, outcome)
}

// Wait blocks until pending term lookup records are written.
// It is a no-op until Init has been called.
func Wait() {
	if recorder == nil {
		return
	}
	recorder.Wait()
}

// Handler exposes the default registry on a Fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
