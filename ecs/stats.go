package ecs

import (
	"sort"
)

// StoreStats describes one component store.
type StoreStats struct {
	Name        string
	RecordCount int
}

// WorldStats is a snapshot of the arena, used by debug overlays and reports.
type WorldStats struct {
	EntityCount    int
	FreeSlots      int
	StoreCount     int
	SingletonCount int
	Stores         []StoreStats
	SingletonTypes []string
}

// CollectStats gathers a snapshot of the world contents.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		EntityCount:    w.count,
		FreeSlots:      len(w.freeSlots),
		StoreCount:     len(w.stores),
		SingletonCount: len(w.singletons),
		Stores:         make([]StoreStats, 0, len(w.stores)),
		SingletonTypes: make([]string, 0, len(w.singletons)),
	}

	for _, store := range w.stores {
		stats.Stores = append(stats.Stores, StoreStats{
			Name:        store.Name(),
			RecordCount: store.Len(),
		})
	}

	for typ := range w.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
