package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
	"github.com/floodrisk/forms-data/go/internal/core/ports"
	"github.com/floodrisk/forms-data/go/internal/infrastructure/metrics"
)

// AreasKey is the single key the area list is stored under inside its segment.
const AreasKey = "areas"

// AreaCache keeps the area list in one engine segment for a fixed TTL.
// The segment is provisioned lazily on first use; if that fails the cache
// stays disabled and every call goes straight to the fetch function.
type AreaCache struct {
	engine  ports.CacheEngine
	segment string
	ttl     time.Duration
	logger  *logrus.Logger

	once  sync.Once
	mu    sync.RWMutex
	state ports.CacheState
	store ports.Cache

	sf singleflight.Group
}

func NewAreaCache(engine ports.CacheEngine, segment string, ttl time.Duration, logger *logrus.Logger) *AreaCache {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &AreaCache{engine: engine, segment: segment, ttl: ttl, logger: logger}
}

func (c *AreaCache) State() ports.CacheState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *AreaCache) log() *logrus.Entry {
	return c.logger.WithFields(logrus.Fields{"segment": c.segment, "key": AreasKey})
}

func (c *AreaCache) init(ctx context.Context) {
	c.once.Do(func() {
		store, err := c.provision(ctx)
		c.mu.Lock()
		defer c.mu.Unlock()
		switch {
		case err == nil:
			c.store = store
			c.state = ports.CacheActive
			c.log().WithField("engine", c.engine.Name()).Info("area cache segment provisioned")
		case errors.Is(err, ports.ErrSegmentProvisioned):
			c.state = ports.CacheDisabled
			metrics.CacheError(c.segment, "provision")
			c.log().WithError(err).Warn("area cache segment already exists, caching disabled")
		default:
			c.state = ports.CacheDisabled
			metrics.CacheError(c.segment, "provision")
			c.log().WithError(err).Error("area cache provisioning failed, caching disabled")
		}
	})
}

func (c *AreaCache) provision(ctx context.Context) (ports.Cache, error) {
	if c.engine == nil {
		return nil, errors.New("no cache engine configured")
	}
	return c.engine.Provision(ctx, c.segment)
}

func (c *AreaCache) active() (ports.Cache, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store, c.state == ports.CacheActive
}

// GetCached returns the area list from the segment, or from fetch on a miss.
// Cache failures are logged and answered with a direct fetch; they never
// reach the caller.
func (c *AreaCache) GetCached(ctx context.Context, fetch ports.AreaFetchFunc) ports.AreaLookup {
	c.init(ctx)
	store, ok := c.active()
	if !ok {
		return c.record(c.direct(ctx, fetch))
	}

	raw, hit, err := store.Get(ctx, AreasKey)
	switch {
	case err != nil:
		metrics.CacheError(c.segment, "get")
		c.log().WithError(err).Warn("area cache read failed, fetching directly")
		return c.record(c.direct(ctx, fetch))
	case hit:
		areas, derr := area.DecodeList(raw)
		if derr == nil {
			return c.record(ports.AreaLookup{Areas: areas, Source: ports.AreaSourceCached})
		}
		metrics.CacheError(c.segment, "decode")
		c.log().WithError(derr).Warn("cached area payload unreadable, treating as a miss")
	}

	// The shared fetch outlives any single waiter's request.
	shared := context.WithoutCancel(ctx)
	v, _, _ := c.sf.Do(c.segment+":"+AreasKey, func() (any, error) {
		lookup := c.direct(shared, fetch)
		if !lookup.OK() {
			return lookup, nil
		}
		payload, err := area.EncodeEnvelope(lookup.Areas, c.ttl)
		if err == nil {
			err = store.Set(shared, AreasKey, payload, c.ttl)
		}
		if err != nil {
			metrics.CacheError(c.segment, "set")
			c.log().WithError(err).Warn("area cache write failed, returning fetched data")
		}
		return lookup, nil
	})
	return c.record(v.(ports.AreaLookup))
}

// Invalidate drops the stored list so the next read refetches.
func (c *AreaCache) Invalidate(ctx context.Context) error {
	c.init(ctx)
	store, ok := c.active()
	if !ok {
		return nil
	}
	if err := store.Delete(ctx, AreasKey); err != nil {
		metrics.CacheError(c.segment, "delete")
		return err
	}
	c.log().Info("area cache invalidated")
	return nil
}

func (c *AreaCache) direct(ctx context.Context, fetch ports.AreaFetchFunc) ports.AreaLookup {
	if fetch == nil {
		return ports.AreaLookup{Source: ports.AreaSourceUnavailable}
	}
	res := fetch(ctx)
	areas, ok := areasFromResult(res)
	if !ok {
		c.log().WithFields(logrus.Fields{
			"status":  res.Status,
			"success": res.Success,
		}).Warn("area fetch produced no data")
		return ports.AreaLookup{Source: ports.AreaSourceUnavailable}
	}
	if problems := area.Validate(areas); len(problems) > 0 {
		c.log().WithField("problems", len(problems)).Debug("area hierarchy has inconsistent parents")
	}
	return ports.AreaLookup{Areas: areas, Source: ports.AreaSourceFetched}
}

func (c *AreaCache) record(l ports.AreaLookup) ports.AreaLookup {
	metrics.CacheLookup(c.segment, l.Source.String())
	return l
}

func areasFromResult(res api.Result) ([]area.Area, bool) {
	if !res.Success || len(res.Data) == 0 {
		return nil, false
	}
	areas, err := area.DecodeList(res.Data)
	if err != nil {
		return nil, false
	}
	return areas, true
}
