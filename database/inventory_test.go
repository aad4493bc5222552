package database

import (
	"testing"

	"shroomworks/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return db
}

func mustInsertLot(t *testing.T, db *sqlx.DB, name, lot, qty, unit, date string) {
	t.Helper()
	tx, err := db.Beginx()
	require.NoError(t, err)
	defer tx.Rollback()
	_, err = InsertInventoryLotInTx(tx, model.InventoryLot{
		ProductName:  name,
		LotNumber:    lot,
		Quantity:     decimal.RequireFromString(qty),
		Unit:         unit,
		ReceivedDate: date,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
}

func TestSearchInventory(t *testing.T) {
	db := newTestDB(t)
	mustInsertLot(t, db, "Turmeric", "T-001", "1000", "g", "2026-01-02")
	mustInsertLot(t, db, "Ginger", "G-001", "500", "g", "2026-01-03")

	all, err := SearchInventory(db, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Turmeric", all[0].ProductName)

	matched, err := SearchInventory(db, "Gin")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "G-001", matched[0].LotNumber)

	byLot, err := SearchInventory(db, "T-001")
	require.NoError(t, err)
	require.Len(t, byLot, 1)

	none, err := SearchInventory(db, "no such thing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeductInventoryInTx(t *testing.T) {
	db := newTestDB(t)
	mustInsertLot(t, db, "Turmeric", "T-001", "1000", "g", "2026-01-02")

	tx, err := db.Beginx()
	require.NoError(t, err)
	affected, err := DeductInventoryInTx(tx, "Turmeric", "T-001", decimal.RequireFromString("250.5"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	missed, err := DeductInventoryInTx(tx, "Turmeric", "WRONG-LOT", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.EqualValues(t, 0, missed)
	require.NoError(t, tx.Commit())

	lot, err := GetInventoryLotByID(db, 1)
	require.NoError(t, err)
	assert.Equal(t, "749.5", lot.Quantity.String())
}

func TestGetStockSummary(t *testing.T) {
	db := newTestDB(t)
	mustInsertLot(t, db, "Turmeric", "T-001", "1000", "g", "2026-01-02")
	mustInsertLot(t, db, "Turmeric", "T-002", "500", "g", "2026-01-05")
	mustInsertLot(t, db, "Honey", "H-001", "2", "kg", "2026-01-06")

	rows, err := GetStockSummary(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Honey", rows[0].ProductName)
	assert.Equal(t, "kg", rows[0].Unit)
	assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(2)))

	assert.Equal(t, "Turmeric", rows[1].ProductName)
	assert.True(t, rows[1].Total.Equal(decimal.NewFromInt(1500)))
}
