package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-ai/models"
	"github.com/yeremiapane/restaurant-ai/utils"
	"gorm.io/gorm"
)

// Tables returns every entity in creation order: tables without references first,
// order_items last since it points at both orders and food_items.
func Tables() []interface{} {
	return []interface{}{
		&models.Account{},
		&models.Restaurant{},
		&models.OtpVerification{},
		&models.SessionRecord{},
		&models.FoodItem{},
		&models.Order{},
		&models.Booking{},
		&models.TableImage{},
		&models.AiChatHistory{},
		&models.OrderItem{},
	}
}

// EnsureSchema creates every missing table. Safe to call on each start.
// It stops at the first table it cannot create.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	created := 0
	for _, model := range Tables() {
		name, err := TableName(db, model)
		if err != nil {
			return &SchemaError{Table: fmt.Sprintf("%T", model), Err: err}
		}

		ok, err := ensureTable(db, model)
		if err != nil {
			utils.ErrorLogger.Errorf("Error creating table %s: %v", name, err)
			return &SchemaError{Table: name, Err: err}
		}
		if ok {
			created++
			utils.InfoLogger.Printf("Table %s created", name)
		} else {
			utils.InfoLogger.Debugf("Table %s already present", name)
		}
	}

	utils.InfoLogger.Printf("Database schema ready (%d of %d tables created)", created, len(Tables()))
	return nil
}

// ensureTable reports whether it created the table.
func ensureTable(db *gorm.DB, model interface{}) (bool, error) {
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if tx.Migrator().HasTable(model) {
			return nil
		}
		if err := tx.Migrator().CreateTable(model); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		// another process may have created it between HasTable and CreateTable
		if ctxErr := db.Statement.Context.Err(); ctxErr == nil && db.Migrator().HasTable(model) {
			return false, nil
		}
		return false, err
	}
	return created, nil
}

// TableName resolves the store table name of a model.
func TableName(db *gorm.DB, model interface{}) (string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return "", err
	}
	if stmt.Schema == nil {
		return "", errors.New("model has no schema")
	}
	return stmt.Schema.Table, nil
}

// TableCounts returns the row count of every table, keyed by table name.
func TableCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	db = db.WithContext(ctx)
	counts := make(map[string]int64, len(Tables()))
	for _, model := range Tables() {
		name, err := TableName(db, model)
		if err != nil {
			return nil, err
		}
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}
