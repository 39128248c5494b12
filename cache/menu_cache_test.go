package menu_cache

import (
	"testing"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
)

func TestMenuCacheMissWhenEmpty(t *testing.T) {
	Invalidate()

	if _, _, ok := GetMenu("downtown"); ok {
		t.Fatal("expected cache miss on empty cache")
	}
}

func TestMenuCacheRoundTrip(t *testing.T) {
	Invalidate()

	cats := []models.MenuCategory{{Name: "Starters"}}
	items := map[string][]models.MenuItem{"cat-1": {{Name: "Bruschetta"}}}
	SetMenu("downtown", cats, items)

	gotCats, gotItems, ok := GetMenu("downtown")
	if !ok {
		t.Fatal("expected cache hit after SetMenu")
	}
	if len(gotCats) != 1 || gotCats[0].Name != "Starters" {
		t.Fatalf("unexpected categories: %+v", gotCats)
	}
	if len(gotItems["cat-1"]) != 1 || gotItems["cat-1"][0].Name != "Bruschetta" {
		t.Fatalf("unexpected items: %+v", gotItems)
	}
}

func TestMenuCacheIsPerBranch(t *testing.T) {
	Invalidate()

	SetMenu("downtown", []models.MenuCategory{{Name: "Starters"}}, nil)

	if _, _, ok := GetMenu("riverside"); ok {
		t.Fatal("expected miss for a branch that was never cached")
	}
}

func TestMenuCacheExpires(t *testing.T) {
	Invalidate()

	SetMenu("downtown", []models.MenuCategory{{Name: "Starters"}}, nil)

	menuMu.Lock()
	menuCache["downtown"].fetchedAt = time.Now().Add(-TTL - time.Second)
	menuMu.Unlock()

	if _, _, ok := GetMenu("downtown"); ok {
		t.Fatal("expected miss after TTL elapsed")
	}
}

func TestInvalidateClearsEverything(t *testing.T) {
	SetMenu("downtown", []models.MenuCategory{{Name: "Starters"}}, nil)
	SetFeatured([]models.MenuItem{{Name: "Ribeye"}})

	Invalidate()

	if _, _, ok := GetMenu("downtown"); ok {
		t.Fatal("expected menu cache cleared")
	}
	if _, ok := GetFeatured(); ok {
		t.Fatal("expected featured cache cleared")
	}
}
