package configs

import (
	"fmt"
	"testing"

	"backend/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// The Product<->Option join table carries a sort_order column; migration has
// to build it from the explicit join model, not the implicit two-column
// schema, no matter which side of the association migrates first.
func TestMigrateKeepsJoinTableOrderingColumn(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))

	cat := entity.Category{Name: "bebidas", Active: true}
	require.NoError(t, db.Create(&cat).Error)
	p := entity.Product{Name: "Gaseosa", Available: true, CategoryID: cat.ID}
	require.NoError(t, db.Create(&p).Error)
	o := entity.Option{Name: "Hielo", MaxPicks: 1}
	require.NoError(t, db.Create(&o).Error)

	require.NoError(t, db.Create(&entity.ProductOption{ProductID: p.ID, OptionID: o.ID, SortOrder: 3}).Error)

	var got entity.ProductOption
	require.NoError(t, db.Where("product_id = ? AND option_id = ?", p.ID, o.ID).First(&got).Error)
	require.Equal(t, 3, got.SortOrder)
}
