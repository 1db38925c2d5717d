package lookup

import (
	"context"
	"sync"
)

// ZipCache is a read-through cache over the zip_codes reference table. It is
// an injected collaborator with an explicit refresh contract, not a
// package-global. Misses are cached too, so an unknown zip costs one query
// per cache generation.
type ZipCache struct {
	repo Repository

	mu      sync.RWMutex
	entries map[string]zipEntry
}

type zipEntry struct {
	city, state string
	found       bool
}

func NewZipCache(repo Repository) *ZipCache {
	return &ZipCache{
		repo:    repo,
		entries: make(map[string]zipEntry),
	}
}

// Lookup resolves a zip to city/state, hitting the database only on a
// cache miss.
func (z *ZipCache) Lookup(ctx context.Context, zip string) (string, string, bool) {
	z.mu.RLock()
	e, ok := z.entries[zip]
	z.mu.RUnlock()
	if ok {
		return e.city, e.state, e.found
	}

	row, err := z.repo.GetZip(ctx, zip)
	if err != nil {
		// Leave the entry uncached so a later call can retry.
		return "", "", false
	}

	e = zipEntry{}
	if row != nil {
		e = zipEntry{city: row.City, state: row.State, found: true}
	}

	z.mu.Lock()
	z.entries[zip] = e
	z.mu.Unlock()

	return e.city, e.state, e.found
}

// Refresh drops the cached entries and preloads the full reference table.
func (z *ZipCache) Refresh(ctx context.Context) error {
	rows, err := z.repo.AllZips(ctx)
	if err != nil {
		return err
	}

	entries := make(map[string]zipEntry, len(rows))
	for _, row := range rows {
		entries[row.Zip] = zipEntry{city: row.City, state: row.State, found: true}
	}

	z.mu.Lock()
	z.entries = entries
	z.mu.Unlock()
	return nil
}
