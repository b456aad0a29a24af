package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"listing-directory/internal/listing"
	"listing-directory/internal/listing/repository"
	"listing-directory/internal/model"
	pkgLog "listing-directory/pkg/log"
)

const (
	defaultDetailCacheSize = 256
	defaultDetailCacheTTL  = 5 * time.Minute
)

// Config tunes the directory client.
type Config struct {
	DetailCacheSize int
	DetailCacheTTL  time.Duration
}

var _ listing.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	detailCache *expirable.LRU[string, model.Listing]

	// mu guards everything below. It is never held across a repository call.
	mu           sync.Mutex
	listings     []model.Listing
	readStatus   model.RequestStatus
	actionStatus model.RequestStatus
	readSeq      uint64
	cancelRead   context.CancelFunc
	actionSeq    uint64

	hookMu sync.RWMutex
	hooks  []func()
}

// New creates a new listing directory client with an empty collection.
func New(l pkgLog.Logger, repo repository.Repository, cfg Config) *implUseCase {
	size := cfg.DetailCacheSize
	if size <= 0 {
		size = defaultDetailCacheSize
	}
	ttl := cfg.DetailCacheTTL
	if ttl <= 0 {
		ttl = defaultDetailCacheTTL
	}

	return &implUseCase{
		l:            l,
		repo:         repo,
		detailCache:  expirable.NewLRU[string, model.Listing](size, nil, ttl),
		listings:     []model.Listing{},
		readStatus:   model.Idle(),
		actionStatus: model.Idle(),
	}
}
