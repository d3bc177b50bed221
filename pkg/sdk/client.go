package hbnb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/db"
	"github.com/kailas-cloud/hbnb/internal/db/memory"
	dbRedis "github.com/kailas-cloud/hbnb/internal/db/redis"
	"github.com/kailas-cloud/hbnb/internal/domain"
	"github.com/kailas-cloud/hbnb/internal/repository/entity"
	"github.com/kailas-cloud/hbnb/internal/repository/keyspace"
	"github.com/kailas-cloud/hbnb/internal/repository/relation"
	amenityuc "github.com/kailas-cloud/hbnb/internal/usecase/amenity"
	"github.com/kailas-cloud/hbnb/internal/usecase/cascade"
	cityuc "github.com/kailas-cloud/hbnb/internal/usecase/city"
	healthuc "github.com/kailas-cloud/hbnb/internal/usecase/health"
	placeuc "github.com/kailas-cloud/hbnb/internal/usecase/place"
	reviewuc "github.com/kailas-cloud/hbnb/internal/usecase/review"
	searchuc "github.com/kailas-cloud/hbnb/internal/usecase/search"
	stateuc "github.com/kailas-cloud/hbnb/internal/usecase/state"
	statsuc "github.com/kailas-cloud/hbnb/internal/usecase/stats"
	useruc "github.com/kailas-cloud/hbnb/internal/usecase/user"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the hbnb SDK entry point.
type Client struct {
	store     db.Store
	states    *stateuc.Service
	cities    *cityuc.Service
	amenities *amenityuc.Service
	users     *useruc.Service
	places    *placeuc.Service
	reviews   *reviewuc.Service
	search    searchuc.Searcher
	stats     *statsuc.Service
	health    *healthuc.Service
	obs       *observer
}

// New creates a Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.driver == "" {
		return nil, errors.New("hbnb: storage required (use WithValkey, WithRedis or WithMemory)")
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("hbnb: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("hbnb: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("hbnb: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	keys := keyspace.New(cfg.keyPrefix)
	repos := entity.NewSet(store, keys)
	rels := relation.New(store, keys)
	deleter := cascade.New(
		repos.States, repos.Cities, repos.Places, repos.Amenities, repos.Users, repos.Reviews, rels,
	)

	users := useruc.New(repos.Users, deleter)
	if cfg.bcryptCost > 0 {
		users = users.WithHashCost(cfg.bcryptCost)
	}

	return &Client{
		store:     store,
		states:    stateuc.New(repos.States, deleter),
		cities:    cityuc.New(repos.Cities, repos.States, rels, deleter),
		amenities: amenityuc.New(repos.Amenities, deleter),
		users:     users,
		places:    placeuc.New(repos.Places, repos.Cities, repos.Users, repos.Amenities, rels, deleter),
		reviews:   reviewuc.New(repos.Reviews, repos.Places, repos.Users, rels, deleter),
		search:    searchuc.New(repos.Places, repos.States, repos.Cities, rels),
		stats: statsuc.New(map[domain.Kind]statsuc.Counter{
			domain.KindAmenity: repos.Amenities,
			domain.KindCity:    repos.Cities,
			domain.KindPlace:   repos.Places,
			domain.KindReview:  repos.Reviews,
			domain.KindState:   repos.States,
			domain.KindUser:    repos.Users,
		}),
		health: healthuc.New(store),
		obs:    obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Stats returns the number of stored records per collection.
func (c *Client) Stats(ctx context.Context) (map[string]int, error) {
	return call(c.obs, "stats", func() (map[string]int, error) {
		return c.stats.Counts(ctx)
	})
}

// States returns the state service.
func (c *Client) States() *StateService {
	return &StateService{svc: c.states, obs: c.obs}
}

// Cities returns the city service.
func (c *Client) Cities() *CityService {
	return &CityService{svc: c.cities, obs: c.obs}
}

// Amenities returns the amenity service.
func (c *Client) Amenities() *AmenityService {
	return &AmenityService{svc: c.amenities, obs: c.obs}
}

// Users returns the user service.
func (c *Client) Users() *UserService {
	return &UserService{svc: c.users, obs: c.obs}
}

// Places returns the place service.
func (c *Client) Places() *PlaceService {
	return &PlaceService{svc: c.places, obs: c.obs}
}

// Reviews returns the review service.
func (c *Client) Reviews() *ReviewService {
	return &ReviewService{svc: c.reviews, obs: c.obs}
}
