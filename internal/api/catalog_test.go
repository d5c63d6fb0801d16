package api

import (
	"testing"
	"time"

	"smart_cafe/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActiveCafes(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.db.Create(&domain.Cafe{Name: "Closed Corner", Status: "inactive"}).Error)

	rec := ts.doJSON(t, "GET", "/api/menu/cafes", "", "")
	require.Equal(t, 200, rec.Code)
	cafes := decode(t, rec)["cafes"].([]any)
	require.Len(t, cafes, 1)
	assert.Equal(t, "Cafe De Light", cafes[0].(map[string]any)["name"])
}

func TestListActiveCafesServesFromCache(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, "GET", "/api/menu/cafes", "", "")
	require.Equal(t, 200, rec.Code)

	// A direct DB write is invisible while the cached list is fresh
	require.NoError(t, ts.db.Create(&domain.Cafe{Name: "New Spot", Status: "active"}).Error)
	rec = ts.doJSON(t, "GET", "/api/menu/cafes", "", "")
	require.Equal(t, 200, rec.Code)
	assert.Len(t, decode(t, rec)["cafes"].([]any), 1)

	// Once the entry expires the new cafe appears
	ts.redis.FastForward(2 * time.Minute)
	rec = ts.doJSON(t, "GET", "/api/menu/cafes", "", "")
	require.Equal(t, 200, rec.Code)
	assert.Len(t, decode(t, rec)["cafes"].([]any), 2)
}

func TestListMenuItemsAvailableOnly(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.db.Model(&domain.MenuItem{}).Where("id = ?", 2).Update("available", false).Error)

	rec := ts.doJSON(t, "GET", "/api/menu/cafes/1/items", "", "")
	require.Equal(t, 200, rec.Code)
	items := decode(t, rec)["items"].([]any)
	assert.Len(t, items, 6)
	for _, raw := range items {
		item := raw.(map[string]any)
		assert.NotEqual(t, "Margherita Pizza", item["name"])
		assert.Equal(t, true, item["available"])
	}
}

func TestListMenuItemsScopedToCafe(t *testing.T) {
	ts := newTestServer(t)
	other := domain.Cafe{Name: "Other Cafe", Status: "active"}
	require.NoError(t, ts.db.Create(&other).Error)
	require.NoError(t, ts.db.Create(&domain.MenuItem{CafeID: other.ID, Name: "Tea", Price: 100, Available: true}).Error)

	rec := ts.doJSON(t, "GET", "/api/menu/cafes/"+itoa(other.ID)+"/items", "", "")
	require.Equal(t, 200, rec.Code)
	items := decode(t, rec)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Tea", items[0].(map[string]any)["name"])
}

func TestListMenuItemsBadCafeID(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.doJSON(t, "GET", "/api/menu/cafes/abc/items", "", "")
	assert.Equal(t, 400, rec.Code)
}
