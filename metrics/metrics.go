package metrics

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/automoto/doomerang-combo/combat"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrNotLocal is returned when the debug server is asked to bind anywhere
// but the loopback interface.
var ErrNotLocal = errors.New("metrics server must bind to localhost")

// Recorder counts combo outcomes. It implements combat.Observer.
// Labels are bounded enums only.
type Recorder struct {
	registry *prometheus.Registry

	attacks      *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	bufferEvents *prometheus.CounterVec
	resets       *prometheus.CounterVec
	blocks       *prometheus.CounterVec
	tickDuration prometheus.Histogram
}

var _ combat.Observer = (*Recorder)(nil)

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		registry: reg,
		attacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "combo_attacks_total",
			Help: "Attacks committed, by type and chain step",
		}, []string{"type", "step"}),
		rejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "combo_rejections_total",
			Help: "Attack intents rejected, by reason",
		}, []string{"type", "reason"}),
		bufferEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "combo_buffer_events_total",
			Help: "Input buffer activity: stored, replayed or dropped with a reason",
		}, []string{"event"}),
		resets: f.NewCounterVec(prometheus.CounterOpts{
			Name: "combo_resets_total",
			Help: "Combo resets, by cause",
		}, []string{"cause"}),
		blocks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "combo_block_transitions_total",
			Help: "Block machine transitions, by phase entered",
		}, []string{"phase"}),
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "combo_tick_duration_seconds",
			Help:    "Time spent updating the combat systems in one tick",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) AttackCommitted(s combat.AttackSnapshot) {
	t := combat.ComboLight
	if s.IsHeavy {
		t = combat.ComboHeavy
	}
	r.attacks.WithLabelValues(t.String(), strconv.Itoa(s.Step)).Inc()
}

func (r *Recorder) AttackRejected(in combat.Intent, reason combat.RejectReason) {
	r.rejections.WithLabelValues(in.Type().String(), reason.String()).Inc()
}

func (r *Recorder) BufferStored(combat.Intent) {
	r.bufferEvents.WithLabelValues("stored").Inc()
}

func (r *Recorder) BufferReplayed(combat.Intent) {
	r.bufferEvents.WithLabelValues("replayed").Inc()
}

func (r *Recorder) BufferDropped(_ combat.Intent, reason combat.DropReason) {
	r.bufferEvents.WithLabelValues("dropped_" + reason.String()).Inc()
}

func (r *Recorder) ComboReset(c combat.ResetCause) {
	r.resets.WithLabelValues(c.String()).Inc()
}

func (r *Recorder) BlockChanged(p combat.BlockPhase) {
	r.blocks.WithLabelValues(p.String()).Inc()
}

// RecordTick records how long one combat update took.
func (r *Recorder) RecordTick(d time.Duration) {
	r.tickDuration.Observe(d.Seconds())
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return mux
}

// StartDebugServer serves Handler on addr in the background. Only loopback
// addresses are accepted.
func StartDebugServer(addr string, r *Recorder) (*http.Server, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("metrics address %q: %w", addr, err)
	}
	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil || !ip.IsLoopback() {
			return nil, fmt.Errorf("metrics address %q: %w", addr, ErrNotLocal)
		}
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen: %w", err)
	}
	srv := &http.Server{Handler: r.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Printf("Metrics server listening on http://%s/metrics", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Warning: metrics server error: %v", err)
		}
	}()
	return srv, nil
}
