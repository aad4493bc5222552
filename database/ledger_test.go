package database

import (
	"testing"

	"shroomworks/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEntriesByProduct(t *testing.T) {
	db := newTestDB(t)

	tx, err := db.Beginx()
	require.NoError(t, err)
	entries := []model.LedgerEntry{
		{ProductName: "Turmeric", LotNumber: "T-001", Delta: decimal.NewFromInt(1000), Unit: "g", Reason: "add"},
		{ProductName: "Turmeric Extract", LotNumber: "TE-001", Delta: decimal.NewFromInt(50), Unit: "g", Reason: "add"},
		{ProductName: "Turmeric", LotNumber: "T-001", Delta: decimal.NewFromInt(-200), Unit: "g", Reason: "manufacture"},
	}
	for _, e := range entries {
		require.NoError(t, InsertLedgerEntryInTx(tx, e))
	}
	require.NoError(t, tx.Commit())

	// 完全一致。"Turmeric Extract" の行は混ざらない。
	got, err := GetLedgerEntriesByProduct(db, "Turmeric")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "add", got[0].Reason)
	assert.True(t, got[0].Delta.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "manufacture", got[1].Reason)
	assert.True(t, got[1].Delta.Equal(decimal.NewFromInt(-200)))

	none, err := GetLedgerEntriesByProduct(db, "Ginger")
	require.NoError(t, err)
	assert.Empty(t, none)
}
