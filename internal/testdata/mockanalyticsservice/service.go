package mockanalyticsservice

import (
	"context"

	"github.com/stretchr/testify/mock"

	"site-analytics-service/internal/model"
	"site-analytics-service/internal/service"
)

type Service struct {
	mock.Mock
}

// Interface compliance check
var _ service.AnalyticsService = &Service{}

func (m *Service) Stats(ctx context.Context, days int) (model.StatsResponse, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(model.StatsResponse), args.Error(1)
}

func (m *Service) Leads(ctx context.Context, days int) (model.LeadsResponse, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(model.LeadsResponse), args.Error(1)
}

func (m *Service) PageviewsSeries(ctx context.Context, days int) (model.SeriesResponse, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(model.SeriesResponse), args.Error(1)
}

func (m *Service) TopPages(ctx context.Context, days, limit int) (model.TopPagesResponse, error) {
	args := m.Called(ctx, days, limit)
	return args.Get(0).(model.TopPagesResponse), args.Error(1)
}

func (m *Service) Devices(ctx context.Context, days int) (model.DevicesResponse, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(model.DevicesResponse), args.Error(1)
}

func (m *Service) Channels(ctx context.Context, days int) (model.ChannelsResponse, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(model.ChannelsResponse), args.Error(1)
}

func (m *Service) Referrers(ctx context.Context, days, limit int) (model.ReferrersResponse, error) {
	args := m.Called(ctx, days, limit)
	return args.Get(0).(model.ReferrersResponse), args.Error(1)
}

func (m *Service) Countries(ctx context.Context, days, limit int) (model.CountriesResponse, error) {
	args := m.Called(ctx, days, limit)
	return args.Get(0).(model.CountriesResponse), args.Error(1)
}

func (m *Service) Cities(ctx context.Context, days, limit int) (model.CitiesResponse, error) {
	args := m.Called(ctx, days, limit)
	return args.Get(0).(model.CitiesResponse), args.Error(1)
}

func (m *Service) Browsers(ctx context.Context, days int) (model.BrowsersResponse, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(model.BrowsersResponse), args.Error(1)
}

func (m *Service) OperatingSystems(ctx context.Context, days int) (model.OperatingSystemsResponse, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(model.OperatingSystemsResponse), args.Error(1)
}

func (m *Service) Events(ctx context.Context, days int) (model.EventsResponse, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(model.EventsResponse), args.Error(1)
}

func (m *Service) LandingPages(ctx context.Context, days, limit int) (model.LandingPagesResponse, error) {
	args := m.Called(ctx, days, limit)
	return args.Get(0).(model.LandingPagesResponse), args.Error(1)
}

func (m *Service) ExitPages(ctx context.Context, days, limit int) (model.ExitPagesResponse, error) {
	args := m.Called(ctx, days, limit)
	return args.Get(0).(model.ExitPagesResponse), args.Error(1)
}

func (m *Service) Realtime(ctx context.Context) (model.RealtimeSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.RealtimeSnapshot), args.Error(1)
}
