package handlers

import (
	"context"

	"lakeshow-api/core/assist"
	"lakeshow-api/core/domain"
)

type mockHeroSelector struct {
	selectFunc func(ctx context.Context) (domain.SelectionResult, error)
}

func (m *mockHeroSelector) Select(ctx context.Context) (domain.SelectionResult, error) {
	if m.selectFunc != nil {
		return m.selectFunc(ctx)
	}
	return domain.SelectionResult{}, nil
}

type mockPodcastSource struct {
	latestFunc   func(ctx context.Context) (*domain.Episode, error)
	episodesFunc func(ctx context.Context, limit int) ([]domain.Episode, error)
}

func (m *mockPodcastSource) Latest(ctx context.Context) (*domain.Episode, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx)
	}
	return nil, nil
}

func (m *mockPodcastSource) Episodes(ctx context.Context, limit int) ([]domain.Episode, error) {
	if m.episodesFunc != nil {
		return m.episodesFunc(ctx, limit)
	}
	return nil, nil
}

type mockVideoSource struct {
	latestFunc func(ctx context.Context) (*domain.Video, error)
	recentFunc func(ctx context.Context, limit int) ([]domain.Video, error)
}

func (m *mockVideoSource) Latest(ctx context.Context) (*domain.Video, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx)
	}
	return nil, nil
}

func (m *mockVideoSource) Recent(ctx context.Context, limit int) ([]domain.Video, error) {
	if m.recentFunc != nil {
		return m.recentFunc(ctx, limit)
	}
	return nil, nil
}

type mockNewsSource struct {
	aggregateFunc func(ctx context.Context, limit int) ([]domain.NewsItem, error)
}

func (m *mockNewsSource) Aggregate(ctx context.Context, limit int) ([]domain.NewsItem, error) {
	if m.aggregateFunc != nil {
		return m.aggregateFunc(ctx, limit)
	}
	return nil, nil
}

type mockReaderService struct {
	extractFunc func(ctx context.Context, url string) (*domain.ReaderView, error)
}

func (m *mockReaderService) Extract(ctx context.Context, url string) (*domain.ReaderView, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return &domain.ReaderView{URL: url}, nil
}

type mockAssistService struct {
	summarizeFunc func(ctx context.Context, req assist.SummaryRequest) (*domain.AssistResult, error)
	captionFunc   func(ctx context.Context, req assist.CaptionRequest) (*domain.AssistResult, error)
	formatFunc    func(ctx context.Context, text string) (*domain.AssistResult, error)
}

func (m *mockAssistService) Summarize(ctx context.Context, req assist.SummaryRequest) (*domain.AssistResult, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, req)
	}
	return &domain.AssistResult{Kind: assist.KindSummary}, nil
}

func (m *mockAssistService) Caption(ctx context.Context, req assist.CaptionRequest) (*domain.AssistResult, error) {
	if m.captionFunc != nil {
		return m.captionFunc(ctx, req)
	}
	return &domain.AssistResult{Kind: assist.KindCaption}, nil
}

func (m *mockAssistService) Format(ctx context.Context, text string) (*domain.AssistResult, error) {
	if m.formatFunc != nil {
		return m.formatFunc(ctx, text)
	}
	return &domain.AssistResult{Kind: assist.KindFormat}, nil
}
