package service

import (
	"errors"

	dmn "github.com/nhanhuynh123/pathgrid/domain"
	"github.com/nhanhuynh123/pathgrid/grid"
	"github.com/nhanhuynh123/pathgrid/maze"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// actionsTotal counts board actions.
	// Labels: action, result (ok, not_found, rejected, error)
	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pathgrid",
		Subsystem: "board",
		Name:      "actions_total",
		Help:      "Total board actions by action and result",
	}, []string{"action", "result"})
)

// actionLabel keeps the label set bounded to known action names.
func actionLabel(a grid.Action) string {
	if _, err := grid.ParseAction(string(a)); err != nil {
		return "unknown"
	}
	return string(a)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, dmn.ErrBoardNotFound):
		return "not_found"
	case errors.Is(err, grid.ErrUnknownAction),
		errors.Is(err, ErrInvalidDimensions),
		errors.Is(err, ErrInvalidCell),
		errors.Is(err, maze.ErrInvalidDensity):
		return "rejected"
	default:
		return "error"
	}
}
