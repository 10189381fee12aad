package battle

import (
	"context"
	"sort"
	"sync"
)

// DiscoveryRepository persists which secret traits have ever been revealed.
// The set is global across battles.
type DiscoveryRepository interface {
	HasDiscovered(ctx context.Context, key string) (bool, error)
	MarkDiscovered(ctx context.Context, key string) error
}

// MemoryDiscovery is a process-local DiscoveryRepository
type MemoryDiscovery struct {
	mu    sync.RWMutex
	found map[string]bool
}

// NewMemoryDiscovery creates an empty discovery set
func NewMemoryDiscovery(keys ...string) *MemoryDiscovery {
	d := &MemoryDiscovery{found: make(map[string]bool, len(keys))}
	for _, k := range keys {
		d.found[k] = true
	}
	return d
}

func (d *MemoryDiscovery) HasDiscovered(_ context.Context, key string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.found[key], nil
}

func (d *MemoryDiscovery) MarkDiscovered(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.found[key] = true
	return nil
}

// ListDiscovered returns every revealed key in sorted order
func (d *MemoryDiscovery) ListDiscovered(_ context.Context) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	keys := make([]string, 0, len(d.found))
	for k := range d.found {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
