// Package metrics exports draw statistics of a tuix engine to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/grindlemire/tuix"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tuix"

// Draw results used as the "result" label.
const (
	ResultOK         = "ok"
	ResultStructural = "structural"
	ResultCanceled   = "canceled"
	ResultError      = "error"
)

// Observer records every draw of an engine. Register it with
// tuix.WithObserver.
type Observer struct {
	registry *prometheus.Registry

	draws        *prometheus.CounterVec
	duration     prometheus.Histogram
	cells        prometheus.Counter
	warnings     *prometheus.CounterVec
	fullRepaints prometheus.Counter
	viewport     *prometheus.GaugeVec
}

var _ tuix.Observer = (*Observer)(nil)

// New creates an observer with its own registry, so several engines in one
// process do not collide.
func New() *Observer {
	o := &Observer{
		registry: prometheus.NewRegistry(),
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws_total",
			Help:      "Draws by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "draw_duration_seconds",
			Help:      "Wall time of a draw.",
			Buckets:   []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
		cells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changed_cells_total",
			Help:      "Cells handed to the transport.",
		}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_total",
			Help:      "Non-fatal problems found while drawing, by kind.",
		}, []string{"kind"}),
		fullRepaints: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "full_repaints_total",
			Help:      "Draws that repainted every cell.",
		}),
		viewport: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "viewport_cells",
			Help:      "Size of the last viewport.",
		}, []string{"axis"}),
	}
	o.registry.MustRegister(o.draws, o.duration, o.cells, o.warnings, o.fullRepaints, o.viewport)
	return o
}

// Registry exposes the underlying registry.
func (o *Observer) Registry() *prometheus.Registry { return o.registry }

// Handler serves the metrics in the Prometheus text format.
func (o *Observer) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}

// ObserveDraw implements tuix.Observer.
func (o *Observer) ObserveDraw(r tuix.Report, err error) {
	o.draws.WithLabelValues(Result(err)).Inc()
	o.duration.Observe(r.Duration.Seconds())
	if err != nil {
		return
	}
	o.cells.Add(float64(len(r.Changes)))
	if r.FullRepaint {
		o.fullRepaints.Inc()
	}
	o.viewport.WithLabelValues("width").Set(float64(r.Viewport.Width))
	o.viewport.WithLabelValues("height").Set(float64(r.Viewport.Height))
	for _, w := range r.Warnings {
		o.warnings.WithLabelValues(WarningKind(w)).Inc()
	}
}

// Result classifies a draw error for the "result" label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case tuix.IsStructural(err):
		return ResultStructural
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultCanceled
	}
	return ResultError
}

// WarningKind names the kind of a draw warning.
func WarningKind(err error) string {
	var dw *tuix.DirectiveWarning
	if errors.As(err, &dw) {
		return "directive"
	}
	var pw *tuix.PaintWarning
	if errors.As(err, &pw) {
		switch {
		case errors.Is(err, tuix.ErrPaintPanic):
			return "panic"
		case errors.Is(err, tuix.ErrUnknownKind):
			return "unknown_kind"
		case errors.Is(err, tuix.ErrOutOfBounds):
			return "out_of_bounds"
		}
		return "paint"
	}
	return "other"
}
