package inventory

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

func TestAddInventoryWritesLotHistoryAndLedger(t *testing.T) {
	db := newTestDB(t)

	rec := postForm(t, AddInventoryHandler(db), "/add", url.Values{
		"product_name":  {"Turmeric"},
		"lot_number":    {"T-001"},
		"quantity":      {"1000"},
		"unit":          {"g"},
		"received_date": {"2026-01-02"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	lots, err := database.SearchInventory(db, "")
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, "Turmeric", lots[0].ProductName)
	assert.Equal(t, "1000", lots[0].Quantity.String())

	history, err := database.GetRecentHistory(db, 5)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Add Inventory", history[0].ActionType)
	assert.Equal(t, "Added 1000.0 g of Turmeric (Lot: T-001) on 2026-01-02", history[0].Details)

	ledger, err := database.GetLedgerEntriesByProduct(db, "Turmeric")
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, "add", ledger[0].Reason)
}

func TestAddInventoryNormalizesLbsOz(t *testing.T) {
	db := newTestDB(t)

	rec := postForm(t, AddInventoryHandler(db), "/add", url.Values{
		"product_name":  {"Honey"},
		"lot_number":    {"H-001"},
		"unit":          {"lbs_oz"},
		"quantity_lbs":  {"5"},
		"quantity_oz":   {"3"},
		"received_date": {"2026-01-02"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	lots, err := database.SearchInventory(db, "Honey")
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, "83", lots[0].Quantity.String())
	assert.Equal(t, "lbs_oz", lots[0].Unit)
}

func TestAddInventoryRejectsBadQuantity(t *testing.T) {
	db := newTestDB(t)

	rec := postForm(t, AddInventoryHandler(db), "/add", url.Values{
		"product_name":  {"Turmeric"},
		"lot_number":    {"T-001"},
		"quantity":      {"abc"},
		"unit":          {"g"},
		"received_date": {"2026-01-02"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	lots, err := database.SearchInventory(db, "")
	require.NoError(t, err)
	assert.Empty(t, lots)
}

func TestDeleteInventoryRequiresPost(t *testing.T) {
	db := newTestDB(t)

	req := httptest.NewRequest(http.MethodGet, "/delete/1", nil)
	rec := httptest.NewRecorder()
	DeleteInventoryHandler(db)(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
