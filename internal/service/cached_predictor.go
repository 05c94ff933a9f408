package service

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/cricket-predictor/internal/ml"
	"github.com/yourusername/cricket-predictor/internal/models"
)

// CachedPredictor wraps a Predictor with short-lived response caching.
// Identical snapshots from many concurrent viewers of the same match
// collapse into one model evaluation.
type CachedPredictor struct {
	predictor *Predictor
	cache     *cache.Cache
	ttl       time.Duration
	maxSize   int
	logger    *logrus.Logger

	mu        sync.Mutex
	hitCount  uint64
	missCount uint64
}

// NewCachedPredictor creates a caching wrapper around the predictor.
func NewCachedPredictor(predictor *Predictor, ttl time.Duration, maxSize int, logger *logrus.Logger) *CachedPredictor {
	if logger == nil {
		logger = logrus.New()
	}
	return &CachedPredictor{
		predictor: predictor,
		cache:     cache.New(ttl, ttl*2),
		ttl:       ttl,
		maxSize:   maxSize,
		logger:    logger,
	}
}

// PredictLive returns a cached prediction when an identical snapshot was
// served within the TTL, otherwise evaluates the model. Failed derivations
// are never cached; they cost nothing to recompute.
func (c *CachedPredictor) PredictLive(state models.MatchState) (*models.Prediction, error) {
	key := stateKey(state)

	if cached, found := c.cache.Get(key); found {
		if pred, ok := cached.(*models.Prediction); ok {
			c.mu.Lock()
			c.hitCount++
			c.mu.Unlock()
			ml.PredictionsTotal.WithLabelValues("true").Inc()
			c.logger.WithField("cache_key", key).Debug("Cache hit for prediction")
			return pred, nil
		}
	}

	c.mu.Lock()
	c.missCount++
	c.mu.Unlock()

	pred, err := c.predictor.PredictLive(state)
	if err != nil {
		return nil, err
	}

	if c.cache.ItemCount() >= c.maxSize {
		c.cache.DeleteExpired()
	}
	// Still full after sweeping expired entries: serve uncached rather than
	// grow past the cap. The entry would have expired within the TTL anyway.
	if c.cache.ItemCount() < c.maxSize {
		c.cache.Set(key, pred, c.ttl)
	}

	return pred, nil
}

// Vocab returns the underlying predictor's vocabulary.
func (c *CachedPredictor) Vocab() *Vocabulary {
	return c.predictor.Vocab()
}

// Stats returns cache hit/miss counts and the hit ratio.
func (c *CachedPredictor) Stats() (hits, misses uint64, hitRatio float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.hitCount + c.missCount
	if total == 0 {
		return c.hitCount, c.missCount, 0
	}
	return c.hitCount, c.missCount, float64(c.hitCount) / float64(total)
}

// Clear drops all cached predictions.
func (c *CachedPredictor) Clear() {
	c.cache.Flush()
}

func stateKey(s models.MatchState) string {
	return fmt.Sprintf("%s|%s|%s|%d|%d|%.1f|%d",
		s.BattingTeam, s.BowlingTeam, s.City,
		s.Target, s.CurrentScore, s.OversDone, s.WicketsFallen)
}
