package usecase_test

import (
	"context"
	"sync"

	"listing-directory/internal/listing/repository"
	"listing-directory/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is a repository.Repository driven by func fields.
type mockRepo struct {
	listFunc   func(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error)
	createFunc func(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error)
	getFunc    func(ctx context.Context, id string) (model.Listing, error)
	deleteFunc func(ctx context.Context, id string) error

	mu        sync.Mutex
	listCalls []repository.ListListingsOptions
	creates   int
	gets      int
	deletes   []string
}

func (m *mockRepo) ListListings(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error) {
	m.mu.Lock()
	m.listCalls = append(m.listCalls, opt)
	m.mu.Unlock()
	if m.listFunc != nil {
		return m.listFunc(ctx, opt)
	}
	return []model.Listing{}, nil
}

func (m *mockRepo) CreateListing(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error) {
	m.mu.Lock()
	m.creates++
	m.mu.Unlock()
	if m.createFunc != nil {
		return m.createFunc(ctx, opt)
	}
	return model.Listing{
		ID:          "srv-1",
		Title:       opt.Title,
		Description: opt.Description,
		Price:       opt.Price,
		Location:    opt.Location,
		City:        opt.City,
	}, nil
}

func (m *mockRepo) GetListing(ctx context.Context, id string) (model.Listing, error) {
	m.mu.Lock()
	m.gets++
	m.mu.Unlock()
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return model.Listing{ID: id}, nil
}

func (m *mockRepo) DeleteListing(ctx context.Context, id string) error {
	m.mu.Lock()
	m.deletes = append(m.deletes, id)
	m.mu.Unlock()
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRepo) listCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listCalls)
}

func seedListings() []model.Listing {
	return []model.Listing{
		{ID: "first", Title: "First", Price: 100, City: "Austin"},
		{ID: "abc123", Title: "Target", Price: 200, City: "Austin"},
		{ID: "last", Title: "Last", Price: 300, City: "Austin"},
	}
}
