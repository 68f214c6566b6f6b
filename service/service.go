package service

import (
	"sync"

	"github.com/emzola/sdmagic/clients"
	"github.com/emzola/sdmagic/config"
	"github.com/emzola/sdmagic/data"
	"github.com/emzola/sdmagic/internal/jsonlog"
	"github.com/emzola/sdmagic/repository"
	"github.com/jellydator/ttlcache/v3"
)

type Service interface {
	categories
	prompts
	templates
	snapshots
}

// service defines the service layer.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
	store  clients.ObjectStore
	cache  *ttlcache.Cache[string, []*data.Category]

	// cacheGen counts category invalidations; guarded by cacheMu.
	cacheMu  sync.Mutex
	cacheGen uint64
}

// New creates a new instance of Service. store may be nil, which disables
// snapshot exports.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository, store clients.ObjectStore, cache *ttlcache.Cache[string, []*data.Category]) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
		store:  store,
		cache:  cache,
	}
}
