package testdb

import (
	"fmt"
	"testing"

	"protein-tracker/internal/domain/consumption"
	"protein-tracker/internal/domain/food"
	"protein-tracker/internal/domain/goal"
	"protein-tracker/internal/domain/meals"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every persisted type, in dependency order.
func Models() []any {
	return []any{
		&food.Food{},
		&meals.Meal{},
		&meals.MealFood{},
		&consumption.ConsumedMeal{},
		&goal.DailyGoal{},
	}
}

// NewSQLite opens a private in-memory database with the schema migrated.
func NewSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(Models()...))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
