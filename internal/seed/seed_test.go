package seed

import (
	"fmt"
	"strings"
	"testing"

	"gameshelf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Genre{}, &models.Developer{}, &models.Game{}))
	return db
}

func TestRunPopulatesAllTables(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(db))

	var genres, developers, games int64
	require.NoError(t, db.Model(&models.Genre{}).Count(&genres).Error)
	require.NoError(t, db.Model(&models.Developer{}).Count(&developers).Error)
	require.NoError(t, db.Model(&models.Game{}).Count(&games).Error)
	assert.Equal(t, int64(10), genres)
	assert.Equal(t, int64(13), developers)
	assert.Equal(t, int64(17), games)
}

func TestRunResolvesReferencesByName(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Run(db))

	var hades models.Game
	require.NoError(t, db.Preload("Genre").Preload("Developer").
		First(&hades, "title = ?", "Hades").Error)
	assert.Equal(t, "Roguelike", hades.Genre.Name)
	require.NotNil(t, hades.Developer)
	assert.Equal(t, "Supergiant Games", hades.Developer.Name)
	assert.Equal(t, models.StatusCompleted, hades.Status)

	// wishlist entries carry no release year or price
	var silksong models.Game
	require.NoError(t, db.First(&silksong, "title = ?", "Hollow Knight: Silksong").Error)
	assert.Nil(t, silksong.ReleaseYear)
	assert.Nil(t, silksong.PricePaid)
	assert.Equal(t, models.StatusWishlist, silksong.Status)

	// the one developer without website or country
	var indie models.Developer
	require.NoError(t, db.First(&indie, "name = ?", "Unknown Indie Dev").Error)
	assert.Nil(t, indie.Website)
	assert.Nil(t, indie.Country)
}

func TestRunIsRepeatable(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	var genres, games int64
	require.NoError(t, db.Model(&models.Genre{}).Count(&genres).Error)
	require.NoError(t, db.Model(&models.Game{}).Count(&games).Error)
	assert.Equal(t, int64(10), genres)
	assert.Equal(t, int64(17), games)
}
