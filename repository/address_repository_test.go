package repository

import (
	"fmt"
	"testing"

	"backend/configs"
	"backend/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, configs.Migrate(db))
	return db
}

func TestSetDefaultAddressKeepsExactlyOne(t *testing.T) {
	db := openTestDB(t)
	repo := NewAddressRepository(db)

	u := entity.User{Email: "ana@example.com", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)

	var addrs []entity.CustomerAddress
	for i := 0; i < 3; i++ {
		a := entity.CustomerAddress{UserID: u.ID, Street: fmt.Sprintf("calle %d", i), City: "Guatemala"}
		require.NoError(t, repo.Create(&a))
		addrs = append(addrs, a)
	}

	countDefaults := func() int {
		var cnt int64
		require.NoError(t, db.Model(&entity.CustomerAddress{}).
			Where("user_id = ? AND is_default = ?", u.ID, true).Count(&cnt).Error)
		return int(cnt)
	}

	require.NoError(t, repo.SetDefault(u.ID, addrs[0].ID))
	assert.Equal(t, 1, countDefaults())

	require.NoError(t, repo.SetDefault(u.ID, addrs[2].ID))
	assert.Equal(t, 1, countDefaults())

	list, err := repo.ListForUser(u.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// the default sorts first
	assert.Equal(t, addrs[2].ID, list[0].ID)
	assert.True(t, list[0].IsDefault)
}

func TestSetDefaultForeignAddressFails(t *testing.T) {
	db := openTestDB(t)
	repo := NewAddressRepository(db)

	owner := entity.User{Email: "ana@example.com", Role: "customer"}
	require.NoError(t, db.Create(&owner).Error)
	intruder := entity.User{Email: "eve@example.com", Role: "customer"}
	require.NoError(t, db.Create(&intruder).Error)

	a := entity.CustomerAddress{UserID: owner.ID, Street: "5a avenida", City: "Guatemala"}
	require.NoError(t, repo.Create(&a))

	assert.Error(t, repo.SetDefault(intruder.ID, a.ID))
}

func TestNitDefaultInvariant(t *testing.T) {
	db := openTestDB(t)
	repo := NewNitRepository(db)

	u := entity.User{Email: "ana@example.com", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)

	n1 := entity.CustomerNit{UserID: u.ID, Nit: "1234567-8", Name: "Ana Lopez"}
	require.NoError(t, repo.Create(&n1))
	n2 := entity.CustomerNit{UserID: u.ID, Nit: "CF", Name: "Consumidor Final"}
	require.NoError(t, repo.Create(&n2))

	require.NoError(t, repo.SetDefault(u.ID, n1.ID))
	require.NoError(t, repo.SetDefault(u.ID, n2.ID))

	def, err := repo.DefaultForUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, n2.ID, def.ID)

	var cnt int64
	require.NoError(t, db.Model(&entity.CustomerNit{}).
		Where("user_id = ? AND is_default = ?", u.ID, true).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}
