package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"tourism-backend/models"
)

func newLocalCache(t *testing.T) *LocationCache {
	t.Helper()
	store := NewTieredStore("", 100)
	t.Cleanup(store.Close)
	return NewLocationCache(store, time.Minute)
}

func TestLocationCache_ListRoundTrip(t *testing.T) {
	c := newLocalCache(t)

	_, ok := c.GetList()
	assert.False(t, ok)

	c.SetList(c.Generation(), []models.Location{{
		ID:          1,
		Name:        "Petra",
		Price:       40,
		Rating:      4.5,
		Attractions: datatypes.JSONSlice[string]{"Treasury"},
	}})

	got, ok := c.GetList()
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Petra", got[0].Name)
	assert.Equal(t, 4.5, got[0].Rating)
	assert.Equal(t, []string{"Treasury"}, []string(got[0].Attractions))
}

func TestLocationCache_InvalidateDropsListAndDetail(t *testing.T) {
	c := newLocalCache(t)
	c.SetList(c.Generation(), []models.Location{{ID: 1}, {ID: 2}})
	c.SetDetail(c.Generation(), &models.LocationDetail{Location: models.Location{ID: 1, Name: "Petra"}})
	c.SetDetail(c.Generation(), &models.LocationDetail{Location: models.Location{ID: 2, Name: "Wadi Rum"}})

	c.Invalidate(1)

	_, ok := c.GetList()
	assert.False(t, ok)
	_, ok = c.GetDetail(1)
	assert.False(t, ok)

	detail, ok := c.GetDetail(2)
	require.True(t, ok)
	assert.Equal(t, "Wadi Rum", detail.Name)
}

func TestLocationCache_DropsUndecodableEntry(t *testing.T) {
	store := NewTieredStore("", 10)
	t.Cleanup(store.Close)
	c := NewLocationCache(store, time.Minute)

	store.Set(keyLocationList, []byte("{not json"), time.Minute)
	_, ok := c.GetList()
	assert.False(t, ok)

	_, ok = store.Get(keyLocationList)
	assert.False(t, ok)
}

func TestLocationCache_SkipsFillAfterInvalidate(t *testing.T) {
	c := newLocalCache(t)

	// a reader takes the generation, then a writer commits before the fill
	generation := c.Generation()
	c.Invalidate(1)
	c.SetDetail(generation, &models.LocationDetail{Location: models.Location{ID: 1, Rating: 0}})
	c.SetList(generation, []models.Location{{ID: 1, Rating: 0}})

	_, ok := c.GetDetail(1)
	assert.False(t, ok)
	_, ok = c.GetList()
	assert.False(t, ok)

	c.SetDetail(c.Generation(), &models.LocationDetail{Location: models.Location{ID: 1, Rating: 5}})
	detail, ok := c.GetDetail(1)
	require.True(t, ok)
	assert.Equal(t, 5.0, detail.Rating)
}
