package database

import (
	"context"
	"errors"

	"github.com/yeremiapane/restaurant-ai/models"
	"github.com/yeremiapane/restaurant-ai/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedReport counts the rows a seeding run actually inserted.
// All zero on a store that was already seeded.
type SeedReport struct {
	AccountsInserted    int
	RestaurantsInserted int
	FoodItemsInserted   int
}

func (r SeedReport) Total() int {
	return r.AccountsInserted + r.RestaurantsInserted + r.FoodItemsInserted
}

type seedHashes struct {
	superadmin  string
	restaurants []string
}

// EnsureSeedData writes the seed rows that are missing. Rows whose unique key already
// exists are skipped, anything else fails the whole call. EnsureSchema must have run first.
func EnsureSeedData(ctx context.Context, db *gorm.DB, seed Seed) (SeedReport, error) {
	var report SeedReport

	if err := seed.Validate(); err != nil {
		return report, &SeedError{Step: "validate", Err: err}
	}

	hashes, err := hashSeedPasswords(ctx, seed)
	if err != nil {
		return report, err
	}

	db = db.WithContext(ctx)

	if report.AccountsInserted, err = seedSuperadmin(db, seed.Superadmin, hashes.superadmin); err != nil {
		return report, err
	}
	if report.RestaurantsInserted, err = seedRestaurants(db, seed.Restaurants, hashes.restaurants); err != nil {
		return report, err
	}
	if report.FoodItemsInserted, err = seedMenus(db, seed.Restaurants); err != nil {
		return report, err
	}

	utils.InfoLogger.Printf("Seed data ready: %d account(s), %d restaurant(s), %d food item(s) inserted",
		report.AccountsInserted, report.RestaurantsInserted, report.FoodItemsInserted)
	return report, nil
}

// hashSeedPasswords runs bcrypt for every seed credential in parallel.
func hashSeedPasswords(ctx context.Context, seed Seed) (seedHashes, error) {
	hashes := seedHashes{restaurants: make([]string, len(seed.Restaurants))}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := utils.HashPassword(seed.Superadmin.Password)
		if err != nil {
			return &SeedError{Step: "hash", Key: seed.Superadmin.Email, Err: err}
		}
		hashes.superadmin = h
		return nil
	})
	for i, r := range seed.Restaurants {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			h, err := utils.HashPassword(r.Password)
			if err != nil {
				return &SeedError{Step: "hash", Key: r.LoginID, Err: err}
			}
			hashes.restaurants[i] = h
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var seedErr *SeedError
		if errors.As(err, &seedErr) {
			return hashes, err
		}
		return hashes, &SeedError{Step: "hash", Err: err}
	}
	return hashes, nil
}

// insertOrIgnore returns 0 when the row hit a unique key that already exists.
func insertOrIgnore(tx *gorm.DB, row interface{}) (int, error) {
	res := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func seedSuperadmin(db *gorm.DB, s AccountSeed, hash string) (int, error) {
	account := models.Account{
		FullName:     s.FullName,
		Email:        s.Email,
		MobileNumber: s.MobileNumber,
		PasswordHash: hash,
		Role:         models.RoleSuperadmin,
		IsActive:     true,
	}

	inserted := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		n, err := insertOrIgnore(tx, &account)
		inserted = n
		return err
	})
	if err != nil {
		return 0, &SeedError{Step: "superadmin", Key: s.Email, Err: err}
	}

	if inserted == 0 {
		utils.InfoLogger.Debugf("Superadmin %s already present, skipped", s.Email)
	} else {
		utils.InfoLogger.Printf("Superadmin %s created", s.Email)
	}
	return inserted, nil
}

func seedRestaurants(db *gorm.DB, seeds []RestaurantSeed, hashes []string) (int, error) {
	inserted := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for i, s := range seeds {
			restaurant := models.Restaurant{
				ID:                restaurantSeedID(i),
				Name:              s.Name,
				Cuisine:           s.Cuisine,
				Rating:            s.Rating,
				Image:             s.Image,
				Address:           s.Address,
				Phone:             s.Phone,
				Description:       s.Description,
				AdminLoginID:      s.LoginID,
				AdminPasswordHash: hashes[i],
				IsActive:          true,
			}
			n, err := insertOrIgnore(tx, &restaurant)
			if err != nil {
				return &SeedError{Step: "restaurant", Key: s.LoginID, Err: err}
			}
			if n == 0 {
				utils.InfoLogger.Debugf("Restaurant %s already present, skipped", s.LoginID)
			}
			inserted += n
		}
		return nil
	})
	if err != nil {
		var seedErr *SeedError
		if errors.As(err, &seedErr) {
			return 0, err
		}
		return 0, &SeedError{Step: "restaurant", Err: err}
	}
	return inserted, nil
}

// seedMenus ties food items to restaurants by seed position. The restaurant row at that
// position has to carry the expected login id, otherwise nothing is written for it.
func seedMenus(db *gorm.DB, seeds []RestaurantSeed) (int, error) {
	inserted := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for i, s := range seeds {
			if len(s.Menu) == 0 {
				continue
			}
			restaurantID := restaurantSeedID(i)

			var owned int64
			if err := tx.Model(&models.Restaurant{}).
				Where("id = ? AND admin_login_id = ?", restaurantID, s.LoginID).
				Count(&owned).Error; err != nil {
				return &SeedError{Step: "menu", Key: s.LoginID, Err: err}
			}
			if owned == 0 {
				return &SeedError{Step: "menu", Key: s.LoginID, Err: ErrRestaurantMismatch}
			}

			for _, item := range s.Menu {
				food := models.FoodItem{
					RestaurantID: restaurantID,
					Name:         item.Name,
					Category:     item.Category,
					Price:        item.Price,
					Description:  item.Description,
					Image:        item.Image,
					Dietary:      item.Dietary,
					ChefSpecial:  item.ChefSpecial,
					Available:    true,
				}
				n, err := insertOrIgnore(tx, &food)
				if err != nil {
					return &SeedError{Step: "menu", Key: s.LoginID + "/" + item.Name, Err: err}
				}
				inserted += n
			}
		}
		return nil
	})
	if err != nil {
		var seedErr *SeedError
		if errors.As(err, &seedErr) {
			return 0, err
		}
		return 0, &SeedError{Step: "menu", Err: err}
	}
	return inserted, nil
}

func restaurantSeedID(position int) uint {
	return uint(position + 1)
}
