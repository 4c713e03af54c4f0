package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("SixLocationsWithBoundedPools", func(t *testing.T) {
		cat := New()
		assert.Len(t, Locations, 6)
		for _, location := range Locations {
			pool := cat.Devices(location)
			assert.GreaterOrEqual(t, len(pool), 40, "pool de %s menor que o mínimo", location)
			assert.Less(t, len(pool), 80, "pool de %s no limite superior exclusivo", location)
		}
	})

	t.Run("DevicesAreCanonicalUUIDs", func(t *testing.T) {
		cat := New()
		for _, location := range Locations {
			for _, deviceID := range cat.Devices(location) {
				_, err := uuid.Parse(deviceID)
				assert.NoError(t, err)
			}
		}
	})

	t.Run("DevicesAreUniqueAcrossLocations", func(t *testing.T) {
		cat := New()
		seen := make(map[string]bool)
		for _, location := range Locations {
			for _, deviceID := range cat.Devices(location) {
				assert.False(t, seen[deviceID], "identificador repetido: %s", deviceID)
				seen[deviceID] = true
			}
		}
	})

	t.Run("PoolsAreStable", func(t *testing.T) {
		cat := New()
		before := cat.Snapshot()
		for i := 0; i < 100; i++ {
			_ = cat.RandomLocation()
			_ = cat.RandomDevice("tokyo")
		}
		assert.Equal(t, before, cat.Snapshot())
	})
}

func TestRandomLocation(t *testing.T) {
	cat := New()
	valid := make(map[string]bool)
	for _, location := range Locations {
		valid[location] = true
	}
	for i := 0; i < 200; i++ {
		assert.True(t, valid[cat.RandomLocation()])
	}
}

func TestRandomDevice(t *testing.T) {
	t.Run("BelongsToTheLocationPool", func(t *testing.T) {
		cat := New()
		for _, location := range Locations {
			pool := make(map[string]bool)
			for _, deviceID := range cat.Devices(location) {
				pool[deviceID] = true
			}
			for i := 0; i < 100; i++ {
				assert.True(t, pool[cat.RandomDevice(location)])
			}
		}
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("CopyDoesNotAliasTheCatalog", func(t *testing.T) {
		cat := New()
		snapshot := cat.Snapshot()
		original := cat.Devices("milan")[0]

		snapshot["milan"][0] = "alterado"
		assert.Equal(t, original, cat.Devices("milan")[0])
	})
}
