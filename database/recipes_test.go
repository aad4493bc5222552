package database

import (
	"testing"

	"shroomworks/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeLifecycle(t *testing.T) {
	db := newTestDB(t)

	tx, err := db.Beginx()
	require.NoError(t, err)
	recipeID, err := InsertRecipeInTx(tx, "Golden Milk")
	require.NoError(t, err)
	err = InsertIngredientsInTx(tx, recipeID, []model.IngredientInput{
		{Name: "Turmeric", Quantity: decimal.NewFromInt(5), Unit: "g"},
		{Name: "Milk", Quantity: decimal.NewFromInt(250), Unit: "ml"},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	recipe, err := GetRecipeByID(db, int(recipeID))
	require.NoError(t, err)
	assert.Equal(t, "Golden Milk", recipe.DrinkName)

	ingredients, err := GetIngredientsByRecipeID(db, int(recipeID))
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Turmeric", ingredients[0].IngredientName)

	rows, err := GetRecipeIngredientRows(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int(recipeID), rows[0].RecipeID)

	// 削除は材料行ごと消える。孤児を残さない。
	tx, err = db.Beginx()
	require.NoError(t, err)
	require.NoError(t, DeleteRecipeInTx(tx, int(recipeID)))
	require.NoError(t, tx.Commit())

	orphans, err := GetIngredientsByRecipeID(db, int(recipeID))
	require.NoError(t, err)
	assert.Empty(t, orphans)
}
