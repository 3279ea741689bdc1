package mockengine

import (
	"context"

	"github.com/stretchr/testify/mock"

	"site-analytics-service/internal/model"
	"site-analytics-service/internal/report"
)

type Engine struct {
	mock.Mock
}

// Interface compliance check
var _ report.Engine = &Engine{}

func (m *Engine) Run(ctx context.Context, spec report.Spec) ([]model.Row, error) {
	args := m.Called(ctx, spec)
	if rows := args.Get(0); rows != nil {
		return rows.([]model.Row), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Engine) RunTotals(ctx context.Context, metrics []string, window report.Window, excludeInternal bool) (map[string]model.Value, error) {
	args := m.Called(ctx, metrics, window, excludeInternal)
	if totals := args.Get(0); totals != nil {
		return totals.(map[string]model.Value), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Engine) Snapshot(ctx context.Context) (model.RealtimeSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.RealtimeSnapshot), args.Error(1)
}
