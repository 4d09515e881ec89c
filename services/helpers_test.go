package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tourism-backend/cache"
	"tourism-backend/config"
	"tourism-backend/models"
	"tourism-backend/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection to :memory: would be a separate database; one
	// connection also serialises all transactions
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, config.Migrate(db))
	return db
}

func newTestCache(t *testing.T) *cache.LocationCache {
	t.Helper()
	store := cache.NewTieredStore("", 100)
	t.Cleanup(func() { store.Close() })
	return cache.NewLocationCache(store, time.Minute)
}

func seedLocation(t *testing.T, db *gorm.DB, name string, price float64) models.Location {
	t.Helper()
	loc := models.Location{
		Name:         name,
		Description:  "A place worth the trip",
		Address:      "Somewhere 1",
		Price:        price,
		BestTime:     "Spring",
		Hours:        "9-17",
		ImageURLs:    datatypes.JSONSlice[string]{"https://img.example.com/1.jpg"},
		Attractions:  datatypes.JSONSlice[string]{"Old town"},
		NearbyPlaces: datatypes.JSONSlice[string]{"Harbour"},
	}
	require.NoError(t, db.Create(&loc).Error)
	return loc
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	user := models.User{Email: email, Password: hash, Username: "traveller", Phone: "555-0100"}
	require.NoError(t, db.Create(&user).Error)
	return user
}
