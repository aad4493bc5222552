package recipe

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"shroomworks/database"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(database.Schema)
	require.NoError(t, err)
	return db
}

func postForm(t *testing.T, handler http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAddRecipeWithIngredients(t *testing.T) {
	db := newTestDB(t)

	rec := postForm(t, AddRecipeHandler(db), "/add_recipe", url.Values{
		"drink_name":      {"Golden Milk"},
		"ingredient_name": {"Turmeric", "Milk"},
		"quantity":        {"5", "250"},
		"unit":            {"g", "ml"},
		"quantity_lbs":    {"", ""},
		"quantity_oz":     {"", ""},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())

	rows, err := database.GetRecipeIngredientRows(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Golden Milk", rows[0].DrinkName)
	assert.Equal(t, "Turmeric", rows[0].IngredientName)
}

func TestAddRecipeRejectsMismatchedArrays(t *testing.T) {
	db := newTestDB(t)

	rec := postForm(t, AddRecipeHandler(db), "/add_recipe", url.Values{
		"drink_name":      {"Golden Milk"},
		"ingredient_name": {"Turmeric", "Milk"},
		"quantity":        {"5"},
		"unit":            {"g", "ml"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rows, err := database.GetRecipeIngredientRows(db)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAddRecipeRejectsEmptyIngredientName(t *testing.T) {
	db := newTestDB(t)

	rec := postForm(t, AddRecipeHandler(db), "/add_recipe", url.Values{
		"drink_name":      {"Golden Milk"},
		"ingredient_name": {"Turmeric", "  "},
		"quantity":        {"5", "250"},
		"unit":            {"g", "ml"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rows, err := database.GetRecipeIngredientRows(db)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAddRecipeNormalizesLbsOzIngredient(t *testing.T) {
	db := newTestDB(t)

	rec := postForm(t, AddRecipeHandler(db), "/add_recipe", url.Values{
		"drink_name":      {"Honey Brew"},
		"ingredient_name": {"Honey"},
		"quantity":        {""},
		"unit":            {"lbs_oz"},
		"quantity_lbs":    {"1"},
		"quantity_oz":     {"4"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())

	ingredients, err := database.GetIngredientsByRecipeID(db, 1)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "20", ingredients[0].Quantity.String())
	assert.Equal(t, "lbs_oz", ingredients[0].Unit)
}

func TestDeleteRecipeRemovesIngredients(t *testing.T) {
	db := newTestDB(t)

	rec := postForm(t, AddRecipeHandler(db), "/add_recipe", url.Values{
		"drink_name":      {"Golden Milk"},
		"ingredient_name": {"Turmeric"},
		"quantity":        {"5"},
		"unit":            {"g"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = postForm(t, DeleteRecipeHandler(db), "/delete_recipe/1", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rows, err := database.GetRecipeIngredientRows(db)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
