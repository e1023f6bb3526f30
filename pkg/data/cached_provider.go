package data

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

// MemoryCache implements DataCache using in-memory storage
type MemoryCache struct {
	cache map[string][]types.PriceObservation
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: make(map[string][]types.PriceObservation),
	}
}

// Get retrieves observations from cache if available
func (c *MemoryCache) Get(key string) ([]types.PriceObservation, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	observations, exists := c.cache[key]
	if exists {
		// Return a copy to prevent external modifications
		result := make([]types.PriceObservation, len(observations))
		copy(result, observations)
		return result, true
	}

	return nil, false
}

// Set stores observations in cache
func (c *MemoryCache) Set(key string, observations []types.PriceObservation) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	cached := make([]types.PriceObservation, len(observations))
	copy(cached, observations)
	c.cache[key] = cached
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache = make(map[string][]types.PriceObservation)
}

// Size returns the number of cached entries
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.cache)
}

// CachedProvider wraps another DataProvider with caching functionality
type CachedProvider struct {
	provider DataProvider
	cache    DataCache
}

// NewCachedProvider creates a new cached data provider
func NewCachedProvider(provider DataProvider) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    NewMemoryCache(),
	}
}

// NewCachedProviderWithCache creates a new cached data provider with a custom cache
func NewCachedProviderWithCache(provider DataProvider, cache DataCache) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    cache,
	}
}

// GetName returns the name of the underlying provider with cache indication
func (p *CachedProvider) GetName() string {
	return "Cached " + p.provider.GetName()
}

// LoadData loads observations with caching to avoid re-reading the source
func (p *CachedProvider) LoadData(source string) ([]types.PriceObservation, error) {
	if cached, exists := p.cache.Get(source); exists {
		return cached, nil
	}

	log.Printf("🔄 Loading historical data from %s", filepath.Base(source))
	observations, err := p.provider.LoadData(source)
	if err != nil {
		log.Printf("❌ Failed to load data from %s: %v", filepath.Base(source), err)
		return nil, err
	}

	p.cache.Set(source, observations)

	log.Printf("✅ Loaded and cached data from %s (%d observations)", filepath.Base(source), len(observations))
	return observations, nil
}

// ValidateData validates observations using the underlying provider
func (p *CachedProvider) ValidateData(observations []types.PriceObservation) error {
	return p.provider.ValidateData(observations)
}

// ClearCache clears all cached data
func (p *CachedProvider) ClearCache() {
	p.cache.Clear()
}
