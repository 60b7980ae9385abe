package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-ai/models"
	"github.com/yeremiapane/restaurant-ai/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupSchema(t *testing.T) *gorm.DB {
	t.Helper()
	db := setupTestDB(t)
	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()

	require.NoError(t, seed.Validate())
	assert.Equal(t, "owner@restaurantai.com", seed.Superadmin.Email)
	assert.Len(t, seed.Restaurants, 3)
	assert.Equal(t, 11, seed.FoodItemCount())

	var logins []string
	for _, r := range seed.Restaurants {
		logins = append(logins, r.LoginID)
	}
	assert.Equal(t, []string{"GS001", "SS002", "MI003"}, logins)
}

func TestSeedValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Seed)
	}{
		{"empty superadmin email", func(s *Seed) { s.Superadmin.Email = " " }},
		{"empty superadmin password", func(s *Seed) { s.Superadmin.Password = "" }},
		{"duplicate login id", func(s *Seed) { s.Restaurants[1].LoginID = "GS001" }},
		{"missing restaurant password", func(s *Seed) { s.Restaurants[2].Password = "" }},
		{"negative price", func(s *Seed) { s.Restaurants[0].Menu[0].Price = -0.01 }},
		{"duplicate menu item", func(s *Seed) { s.Restaurants[1].Menu[1].Name = s.Restaurants[1].Menu[0].Name }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := DefaultSeed()
			tt.mutate(&seed)
			assert.ErrorIs(t, seed.Validate(), ErrInvalidSeed)
		})
	}
}

func TestEnsureSeedData(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds an empty store", func(t *testing.T) {
		db := setupSchema(t)

		report, err := EnsureSeedData(ctx, db, DefaultSeed())
		require.NoError(t, err)
		assert.Equal(t, SeedReport{AccountsInserted: 1, RestaurantsInserted: 3, FoodItemsInserted: 11}, report)

		var admins []models.Account
		require.NoError(t, db.Where("role = ?", models.RoleSuperadmin).Find(&admins).Error)
		require.Len(t, admins, 1)
		assert.Equal(t, "owner@restaurantai.com", admins[0].Email)

		var restaurants []models.Restaurant
		require.NoError(t, db.Order("id").Find(&restaurants).Error)
		require.Len(t, restaurants, 3)
		for i, r := range restaurants {
			assert.Equal(t, uint(i+1), r.ID)
		}

		var foods []models.FoodItem
		require.NoError(t, db.Find(&foods).Error)
		assert.Len(t, foods, 11)
		for _, f := range foods {
			assert.Contains(t, []uint{1, 2, 3}, f.RestaurantID)
		}

		var special models.FoodItem
		require.NoError(t, db.Where("name = ?", "Wagyu Beef Tenderloin").First(&special).Error)
		assert.True(t, special.ChefSpecial)
		assert.Equal(t, uint(1), special.RestaurantID)
	})

	t.Run("second run inserts nothing", func(t *testing.T) {
		db := setupSchema(t)

		_, err := EnsureSeedData(ctx, db, DefaultSeed())
		require.NoError(t, err)

		report, err := EnsureSeedData(ctx, db, DefaultSeed())
		require.NoError(t, err)
		assert.Equal(t, 0, report.Total())
		assert.Equal(t, int64(1), countRows(t, db, &models.Account{}))
		assert.Equal(t, int64(3), countRows(t, db, &models.Restaurant{}))
		assert.Equal(t, int64(11), countRows(t, db, &models.FoodItem{}))
	})

	t.Run("golden spoon admin credentials", func(t *testing.T) {
		db := setupSchema(t)
		_, err := EnsureSeedData(ctx, db, DefaultSeed())
		require.NoError(t, err)

		var r models.Restaurant
		require.NoError(t, db.Where("admin_login_id = ?", "GS001").First(&r).Error)
		assert.Equal(t, "The Golden Spoon", r.Name)
		assert.Equal(t, "Fine Dining", r.Cuisine)
		assert.NotEqual(t, "admin123", r.AdminPasswordHash)
		assert.True(t, utils.VerifyCredential(r, "admin123"))
		assert.False(t, utils.VerifyCredential(r, "admin456"))
	})

	t.Run("superadmin password is stored as a bcrypt hash", func(t *testing.T) {
		db := setupSchema(t)
		_, err := EnsureSeedData(ctx, db, DefaultSeed())
		require.NoError(t, err)

		var a models.Account
		require.NoError(t, db.Where("email = ?", DefaultSuperadminEmail).First(&a).Error)
		assert.NotEqual(t, DefaultSuperadminPassword, a.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(DefaultSuperadminPassword)))

		cost, err := bcrypt.Cost([]byte(a.PasswordHash))
		require.NoError(t, err)
		assert.Equal(t, 10, cost)
	})

	t.Run("existing superadmin email is left untouched", func(t *testing.T) {
		db := setupSchema(t)
		existing := models.Account{FullName: "Someone", Email: DefaultSuperadminEmail, MobileNumber: "0", PasswordHash: "keep"}
		require.NoError(t, db.Create(&existing).Error)

		report, err := EnsureSeedData(ctx, db, DefaultSeed())
		require.NoError(t, err)
		assert.Equal(t, 0, report.AccountsInserted)

		var accounts []models.Account
		require.NoError(t, db.Where("email = ?", DefaultSuperadminEmail).Find(&accounts).Error)
		require.Len(t, accounts, 1)
		assert.Equal(t, "keep", accounts[0].PasswordHash)
		assert.Equal(t, models.RoleCustomer, accounts[0].Role)
	})

	t.Run("existing admin login id yields one row", func(t *testing.T) {
		db := setupSchema(t)
		existing := models.Restaurant{ID: 1, Name: "Renamed Spoon", Cuisine: "Fine Dining", AdminLoginID: "GS001", AdminPasswordHash: "keep"}
		require.NoError(t, db.Create(&existing).Error)

		report, err := EnsureSeedData(ctx, db, DefaultSeed())
		require.NoError(t, err)
		assert.Equal(t, 2, report.RestaurantsInserted)
		assert.Equal(t, 11, report.FoodItemsInserted)

		var n int64
		require.NoError(t, db.Model(&models.Restaurant{}).Where("admin_login_id = ?", "GS001").Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})

	t.Run("restaurant id held by another login aborts menu seeding", func(t *testing.T) {
		db := setupSchema(t)
		squatter := models.Restaurant{ID: 1, Name: "Squatter", Cuisine: "Fast Food", AdminLoginID: "XX999", AdminPasswordHash: "x"}
		require.NoError(t, db.Create(&squatter).Error)

		_, err := EnsureSeedData(ctx, db, DefaultSeed())
		require.Error(t, err)

		var seedErr *SeedError
		require.True(t, errors.As(err, &seedErr))
		assert.Equal(t, "menu", seedErr.Step)
		assert.Equal(t, "GS001", seedErr.Key)
		assert.ErrorIs(t, err, ErrRestaurantMismatch)
		assert.Equal(t, int64(0), countRows(t, db, &models.FoodItem{}))
	})

	t.Run("invalid seed is rejected before any write", func(t *testing.T) {
		db := setupSchema(t)
		seed := DefaultSeed()
		seed.Restaurants[2].LoginID = "GS001"

		_, err := EnsureSeedData(ctx, db, seed)
		assert.ErrorIs(t, err, ErrInvalidSeed)
		assert.Equal(t, int64(0), countRows(t, db, &models.Account{}))
		assert.Equal(t, int64(0), countRows(t, db, &models.Restaurant{}))
	})

	t.Run("write failure rolls back the menu group", func(t *testing.T) {
		db := setupSchema(t)
		diskFull := errors.New("disk full")
		err := db.Callback().Create().Before("gorm:create").Register("test:fail_food_items", func(tx *gorm.DB) {
			if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "food_items" {
				tx.AddError(diskFull)
			}
		})
		require.NoError(t, err)

		_, err = EnsureSeedData(ctx, db, DefaultSeed())
		require.Error(t, err)

		var seedErr *SeedError
		require.True(t, errors.As(err, &seedErr))
		assert.Equal(t, "menu", seedErr.Step)
		assert.ErrorIs(t, err, diskFull)
		assert.Equal(t, int64(0), countRows(t, db, &models.FoodItem{}))
	})

	t.Run("cancelled context stops before writing", func(t *testing.T) {
		db := setupSchema(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := EnsureSeedData(cctx, db, DefaultSeed())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int64(0), countRows(t, db, &models.Restaurant{}))
	})

	t.Run("custom seed without menus", func(t *testing.T) {
		db := setupSchema(t)
		seed := Seed{
			Superadmin: AccountSeed{FullName: "Ops", Email: "ops@example.com", MobileNumber: "1", Password: "pw"},
			Restaurants: []RestaurantSeed{
				{LoginID: "T1", Password: "pw1", Name: "Taco Spot", Cuisine: "Mexican", Rating: 4.1},
			},
		}

		report, err := EnsureSeedData(ctx, db, seed)
		require.NoError(t, err)
		assert.Equal(t, SeedReport{AccountsInserted: 1, RestaurantsInserted: 1}, report)
	})
}
