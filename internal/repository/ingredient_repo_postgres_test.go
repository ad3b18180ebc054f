package repository

import (
	"os"
	"testing"

	"github.com/media2net-app/toptiermen-sub008/internal/database"
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupIngredientDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgres(dsn)
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Ingredient{})
	assert.NoError(t, err)

	db.Exec("DELETE FROM ingredients")

	return db
}

func TestIngredientRepo(t *testing.T) {
	db := setupIngredientDB(t)
	repo := NewIngredientRepo(db)

	ing := &models.Ingredient{Name: "Egg", Calories: 155, Protein: 13, Carbs: 1, Fat: 11, UnitType: "per_piece", Active: true}
	_, err := repo.Create(ing)
	assert.NoError(t, err)

	list, err := repo.FindAll()
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Egg", list[0].Name)

	got, err := repo.FindByName("Egg")
	assert.NoError(t, err)
	assert.Equal(t, 155.0, got.Calories)
}

func TestIngredientRepoActiveFilter(t *testing.T) {
	db := setupIngredientDB(t)
	repo := NewIngredientRepo(db)

	_, err := repo.Create(&models.Ingredient{Name: "Rice", UnitType: "per_100g", Active: true})
	assert.NoError(t, err)
	_, err = repo.Create(&models.Ingredient{Name: "Old rice", UnitType: "per_100g", Active: false})
	assert.NoError(t, err)

	active, err := repo.FindActive()
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "Rice", active[0].Name)
}
