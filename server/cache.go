package server

import (
	"fmt"
	"time"

	"github.com/katalvlaran/sinspline/bspline"
	"github.com/katalvlaran/sinspline/config"
	"github.com/katalvlaran/sinspline/sinspline"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sgostarter/i/l"
	"golang.org/x/sync/singleflight"
)

// ModelCache builds models on demand and keeps them for a TTL. Models are
// immutable, so one instance is shared by every request with the same
// parameters. Concurrent misses on one key share a single build. Build
// errors are not cached.
type ModelCache struct {
	mode    bspline.EvalMode
	models  *cache.Cache // nil: caching disabled
	builds  singleflight.Group
	logger  l.Wrapper
	metrics *metrics
}

// NewModelCache returns a cache whose entries live for ttl; ttl == 0 builds
// a fresh model on every Get. Collectors go to reg, or to a private registry
// when reg is nil.
func NewModelCache(ttl time.Duration, mode bspline.EvalMode, logger l.Wrapper, reg prometheus.Registerer) *ModelCache {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return newModelCache(ttl, mode, logger, newMetrics(reg))
}

func newModelCache(ttl time.Duration, mode bspline.EvalMode, logger l.Wrapper, m *metrics) *ModelCache {
	mc := &ModelCache{
		mode:    mode,
		logger:  logger.WithFields(l.StringField(l.ClsKey, "ModelCache")),
		metrics: m,
	}
	if ttl > 0 {
		mc.models = cache.New(ttl, 2*ttl)
	}

	return mc
}

func cacheKey(p config.Params) string {
	return fmt.Sprintf("%d/%d/%d", p.Ticks, p.Control, p.Degree)
}

// Get returns the model for p, building it on a miss.
func (mc *ModelCache) Get(p config.Params) (*sinspline.Model, error) {
	key := cacheKey(p)
	if mc.models != nil {
		if v, ok := mc.models.Get(key); ok {
			mc.metrics.cacheHits.Inc()
			return v.(*sinspline.Model), nil
		}
	}
	mc.metrics.cacheMisses.Inc()

	v, err, _ := mc.builds.Do(key, func() (interface{}, error) {
		return mc.build(key, p)
	})
	if err != nil {
		return nil, err
	}

	return v.(*sinspline.Model), nil
}

// build constructs the model for p and stores it under key. A flight that
// finished between the caller's miss and this one already stored it.
func (mc *ModelCache) build(key string, p config.Params) (*sinspline.Model, error) {
	if mc.models != nil {
		if v, ok := mc.models.Get(key); ok {
			return v.(*sinspline.Model), nil
		}
	}

	start := time.Now()
	m, err := sinspline.NewDefault(p.Ticks, p.Control, p.Degree, sinspline.WithEvalMode(mc.mode))
	if err != nil {
		mc.metrics.buildErrors.Inc()
		return nil, err
	}
	took := time.Since(start)
	mc.metrics.buildTime.Observe(took.Seconds())
	mc.logger.WithFields(l.StringField("key", key), l.StringField("mode", mc.mode.String()),
		l.StringField("took", took.String())).Debug("model built")

	if mc.models != nil {
		mc.models.Set(key, m, cache.DefaultExpiration)
	}

	return m, nil
}

// Len returns the number of cached models, expired ones included until the
// next cleanup.
func (mc *ModelCache) Len() int {
	if mc.models == nil {
		return 0
	}

	return mc.models.ItemCount()
}
