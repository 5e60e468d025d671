// Package mocks holds testify mocks for the interfaces in package ports.
package mocks

import (
	"context"

	"github.com/Vovarama1992/bestelerim/internal/models"
	"github.com/Vovarama1992/bestelerim/internal/ports"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// ---------------------------------------------------------------- lister

type MockContentsLister struct {
	mock.Mock
}

func NewMockContentsLister(t testingT) *MockContentsLister {
	m := &MockContentsLister{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockContentsLister) ListContents(ctx context.Context, repo string) ([]models.RepoItem, error) {
	args := m.Called(ctx, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RepoItem), args.Error(1)
}

// ---------------------------------------------------------------- store

type MockEngagementStore struct {
	mock.Mock
}

func NewMockEngagementStore(t testingT) *MockEngagementStore {
	m := &MockEngagementStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEngagementStore) Increment(ctx context.Context, kind models.CounterKind, assetName string) (models.EngagementCounter, error) {
	args := m.Called(ctx, kind, assetName)
	return args.Get(0).(models.EngagementCounter), args.Error(1)
}

func (m *MockEngagementStore) Decrement(ctx context.Context, kind models.CounterKind, assetName string) (models.EngagementCounter, error) {
	args := m.Called(ctx, kind, assetName)
	return args.Get(0).(models.EngagementCounter), args.Error(1)
}

func (m *MockEngagementStore) Get(ctx context.Context, kind models.CounterKind, assetName string) (int64, error) {
	args := m.Called(ctx, kind, assetName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementStore) ListAll(ctx context.Context, kind models.CounterKind, limit int) ([]models.EngagementCounter, error) {
	args := m.Called(ctx, kind, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EngagementCounter), args.Error(1)
}

func (m *MockEngagementStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// ---------------------------------------------------------------- service

type MockCatalogService struct {
	mock.Mock
}

func NewMockCatalogService(t testingT) *MockCatalogService {
	m := &MockCatalogService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCatalogService) GetCatalog(ctx context.Context) (*models.MediaResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaResponse), args.Error(1)
}

func (m *MockCatalogService) RecordPlay(ctx context.Context, assetName string) (*models.EngagementCounter, error) {
	args := m.Called(ctx, assetName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EngagementCounter), args.Error(1)
}

func (m *MockCatalogService) ToggleLike(ctx context.Context, assetName string, action models.LikeAction) (int64, error) {
	args := m.Called(ctx, assetName, action)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) ListStats(ctx context.Context) ([]models.EngagementCounter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EngagementCounter), args.Error(1)
}

func (m *MockCatalogService) StoreStatus(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

func (m *MockCatalogService) Events() <-chan ports.EngagementEvent {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(<-chan ports.EngagementEvent)
}
