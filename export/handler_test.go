package export

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"shroomworks/database"
	"shroomworks/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(orig) })
}

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(database.Schema)
	require.NoError(t, err)
	return db
}

func parseCSVBody(t *testing.T, body []byte) [][]string {
	t.Helper()
	require.True(t, bytes.HasPrefix(body, utf8BOM), "export must start with a UTF-8 BOM")
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, utf8BOM)))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportInventory(t *testing.T) {
	chdirTemp(t)
	db := newTestDB(t)

	tx, err := db.Beginx()
	require.NoError(t, err)
	_, err = database.InsertInventoryLotInTx(tx, model.InventoryLot{
		ProductName:  "Turmeric",
		LotNumber:    "T-001",
		Quantity:     decimal.NewFromInt(1000),
		Unit:         "g",
		ReceivedDate: "2026-01-02",
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	req := httptest.NewRequest(http.MethodGet, "/export_inventory", nil)
	rec := httptest.NewRecorder()
	ExportInventoryHandler(db)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "inventory_export.csv")

	rows := parseCSVBody(t, rec.Body.Bytes())
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "Product Name", "Lot Number", "Quantity", "Unit", "Received Date", "Receipt File"}, rows[0])
	assert.Equal(t, "Turmeric", rows[1][1])
	assert.Equal(t, "T-001", rows[1][2])
	assert.Equal(t, "1000", rows[1][3])

	// 既定のエクスポート先 (カレントディレクトリ) にも同じ内容が残る。
	onDisk, err := os.ReadFile("inventory_export.csv")
	require.NoError(t, err)
	assert.Equal(t, rec.Body.Bytes(), onDisk)
}

func TestExportedInventoryRoundTripsThroughImport(t *testing.T) {
	chdirTemp(t)
	db := newTestDB(t)

	tx, err := db.Beginx()
	require.NoError(t, err)
	_, err = database.InsertInventoryLotInTx(tx, model.InventoryLot{
		ProductName:  "Honey, raw",
		LotNumber:    `Lot "A"`,
		Quantity:     decimal.RequireFromString("83"),
		Unit:         "lbs_oz",
		ReceivedDate: "2026-01-02",
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	req := httptest.NewRequest(http.MethodGet, "/export_inventory", nil)
	rec := httptest.NewRecorder()
	ExportInventoryHandler(db)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// カンマと引用符を含む値が崩れず読み戻せる。
	rows := parseCSVBody(t, rec.Body.Bytes())
	require.Len(t, rows, 2)
	assert.Equal(t, "Honey, raw", rows[1][1])
	assert.Equal(t, `Lot "A"`, rows[1][2])
	assert.Equal(t, "83", rows[1][3])
	assert.Equal(t, "lbs_oz", rows[1][4])
}

func TestExportRecipes(t *testing.T) {
	chdirTemp(t)
	db := newTestDB(t)

	tx, err := db.Beginx()
	require.NoError(t, err)
	recipeID, err := database.InsertRecipeInTx(tx, "Golden Milk")
	require.NoError(t, err)
	err = database.InsertIngredientsInTx(tx, recipeID, []model.IngredientInput{
		{Name: "Turmeric", Quantity: decimal.NewFromInt(5), Unit: "g"},
		{Name: "Milk", Quantity: decimal.NewFromInt(250), Unit: "ml"},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	req := httptest.NewRequest(http.MethodGet, "/export_recipes", nil)
	rec := httptest.NewRecorder()
	ExportRecipesHandler(db)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rows := parseCSVBody(t, rec.Body.Bytes())
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Recipe ID", "Drink Name", "Ingredient Name", "Quantity", "Unit"}, rows[0])
	assert.Equal(t, "Golden Milk", rows[1][1])
	assert.Equal(t, "Turmeric", rows[1][2])
	assert.Equal(t, "5.0", rows[1][3])
}
