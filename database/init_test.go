package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-ai/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestInitializeDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, InitializeDatabase(ctx, db, DefaultSeed()))

		counts, err := TableCounts(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts["signed_up_users"])
		assert.Equal(t, int64(3), counts["restaurants"])
		assert.Equal(t, int64(11), counts["food_items"])
		for _, name := range []string{"logged_in_users", "orders", "order_items", "bookings", "table_images", "otp_verification", "ai_chat_history"} {
			assert.Equal(t, int64(0), counts[name], name)
		}
	})

	t.Run("running twice matches running once", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, InitializeDatabase(ctx, db, DefaultSeed()))
		firstCounts, err := TableCounts(ctx, db)
		require.NoError(t, err)
		var firstFoods []models.FoodItem
		require.NoError(t, db.Order("id").Find(&firstFoods).Error)

		require.NoError(t, InitializeDatabase(ctx, db, DefaultSeed()))
		secondCounts, err := TableCounts(ctx, db)
		require.NoError(t, err)
		var secondFoods []models.FoodItem
		require.NoError(t, db.Order("id").Find(&secondFoods).Error)

		assert.Equal(t, firstCounts, secondCounts)
		assert.Equal(t, firstFoods, secondFoods)
	})

	t.Run("unreachable store", func(t *testing.T) {
		db := setupTestDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		err = InitializeDatabase(ctx, db, DefaultSeed())
		require.Error(t, err)

		var connErr *ConnectionError
		assert.True(t, errors.As(err, &connErr))
	})

	t.Run("seed failure is returned", func(t *testing.T) {
		db := setupTestDB(t)
		seed := DefaultSeed()
		seed.Superadmin.Password = ""

		err := InitializeDatabase(ctx, db, seed)
		require.Error(t, err)

		var seedErr *SeedError
		require.True(t, errors.As(err, &seedErr))
		assert.Equal(t, "validate", seedErr.Step)
		// the schema is in place even though seeding stopped
		assert.True(t, db.Migrator().HasTable("order_items"))
	})
}

func TestInitializeDatabaseConcurrently(t *testing.T) {
	ctx := context.Background()

	openStore := func(t *testing.T, path string) *gorm.DB {
		t.Helper()
		db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		t.Cleanup(func() { sqlDB.Close() })
		return db
	}

	for run := 0; run < 5; run++ {
		t.Run(fmt.Sprintf("run %d", run+1), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "store.sqlite")
			first, second := openStore(t, path), openStore(t, path)

			var g errgroup.Group
			for _, db := range []*gorm.DB{first, second} {
				g.Go(func() error {
					return InitializeDatabase(ctx, db, DefaultSeed())
				})
			}
			require.NoError(t, g.Wait())

			assert.Equal(t, int64(1), countRows(t, first, &models.Account{}))
			assert.Equal(t, int64(3), countRows(t, first, &models.Restaurant{}))
			assert.Equal(t, int64(11), countRows(t, first, &models.FoodItem{}))
		})
	}
}
