package menu_cache

import (
	"sync"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
)

const TTL = 5 * time.Minute

// ── Public menu cache ────────────────────────────────────────────────────────
// Stores active categories with their available items per branch slug.
// The public menu endpoint (QR traffic) reads from this; every menu write
// invalidates the whole thing.

type menuEntry struct {
	categories []models.MenuCategory
	items      map[string][]models.MenuItem // category ID -> items
	fetchedAt  time.Time
}

var (
	menuMu    sync.RWMutex
	menuCache = map[string]*menuEntry{} // branch slug -> entry
)

func GetMenu(branchSlug string) (categories []models.MenuCategory, items map[string][]models.MenuItem, ok bool) {
	menuMu.RLock()
	defer menuMu.RUnlock()
	entry := menuCache[branchSlug]
	if entry != nil && time.Since(entry.fetchedAt) < TTL {
		return entry.categories, entry.items, true
	}
	return nil, nil, false
}

func SetMenu(branchSlug string, categories []models.MenuCategory, items map[string][]models.MenuItem) {
	menuMu.Lock()
	defer menuMu.Unlock()
	menuCache[branchSlug] = &menuEntry{
		categories: categories,
		items:      items,
		fetchedAt:  time.Now(),
	}
}

// ── Featured items cache ─────────────────────────────────────────────────────

type featuredEntry struct {
	data      []models.MenuItem
	fetchedAt time.Time
}

var (
	featuredMu    sync.RWMutex
	featuredCache *featuredEntry
)

func GetFeatured() ([]models.MenuItem, bool) {
	featuredMu.RLock()
	defer featuredMu.RUnlock()
	if featuredCache != nil && time.Since(featuredCache.fetchedAt) < TTL {
		return featuredCache.data, true
	}
	return nil, false
}

func SetFeatured(data []models.MenuItem) {
	featuredMu.Lock()
	defer featuredMu.Unlock()
	featuredCache = &featuredEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any menu create/update/delete) ────────────

func Invalidate() {
	menuMu.Lock()
	menuCache = map[string]*menuEntry{}
	menuMu.Unlock()

	featuredMu.Lock()
	featuredCache = nil
	featuredMu.Unlock()
}
