package mockseoservice

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
var _ service.SeoService = &Service{}

func (m *Service) Overview(ctx context.Context, days int) (model.SeoOverviewResponse, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(model.SeoOverviewResponse), args.Error(1)
}

func (m *Service) Queries(ctx context.Context, days, limit int) (model.SeoQueriesResponse, error) {
	args := m.Called(ctx, days, limit)
	return args.Get(0).(model.SeoQueriesResponse), args.Error(1)
}

func (m *Service) Pages(ctx context.Context, days, limit int) (model.SeoPagesResponse, error) {
	args := m.Called(ctx, days, limit)
	return args.Get(0).(model.SeoPagesResponse), args.Error(1)
}

func (m *Service) Sitemaps(ctx context.Context) (model.SitemapsResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.SitemapsResponse), args.Error(1)
}
