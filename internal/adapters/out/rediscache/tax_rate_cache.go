package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/core/domain/model/tax"
	"orderentry/internal/core/ports"
)

type cachedTaxEntry struct {
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
}

// TaxRateCache decorates a TaxRateLookup with a read-through cache.
// Cache failures are not lookup failures: a miss or a cache error falls
// through to the inner lookup, and writing the result back is best effort.
type TaxRateCache struct {
	inner ports.TaxRateLookup
	cache Cache
	ttl   time.Duration
}

// NewTaxRateCache creates a caching decorator around inner.
func NewTaxRateCache(inner ports.TaxRateLookup, cache Cache, ttl time.Duration) *TaxRateCache {
	return &TaxRateCache{
		inner: inner,
		cache: cache,
		ttl:   ttl,
	}
}

// GetTaxEntries returns the cached entries for the location, falling back
// to the inner lookup on a miss.
func (c *TaxRateCache) GetTaxEntries(ctx context.Context, location kernel.Location) ([]tax.Entry, error) {
	key := c.cache.GenerateKey("taxrates",
		fmt.Sprintf("%s:%s", location.Country(), location.PostalCode()))

	if cached, err := c.cache.Get(ctx, key); err == nil && cached != "" {
		if entries, decodeErr := decodeEntries(cached); decodeErr == nil {
			return entries, nil
		}
	}

	entries, err := c.inner.GetTaxEntries(ctx, location)
	if err != nil {
		return nil, err
	}

	if encoded, encodeErr := encodeEntries(entries); encodeErr == nil {
		_ = c.cache.Set(ctx, key, encoded, c.ttl)
	}

	return entries, nil
}

func encodeEntries(entries []tax.Entry) (string, error) {
	cached := make([]cachedTaxEntry, 0, len(entries))
	for _, entry := range entries {
		cached = append(cached, cachedTaxEntry{
			Description: entry.Description(),
			Rate:        entry.Rate(),
		})
	}

	encoded, err := json.Marshal(cached)
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

func decodeEntries(encoded string) ([]tax.Entry, error) {
	var cached []cachedTaxEntry
	if err := json.Unmarshal([]byte(encoded), &cached); err != nil {
		return nil, err
	}

	entries := make([]tax.Entry, 0, len(cached))
	for _, item := range cached {
		entry, err := tax.NewEntry(item.Description, item.Rate)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
