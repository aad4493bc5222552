package database

import (
	"fmt"
	"shroomworks/model"

	"github.com/jmoiron/sqlx"
)

// InsertLedgerEntryInTx は構造化された在庫変動を1件追記します。
func InsertLedgerEntryInTx(tx *sqlx.Tx, entry model.LedgerEntry) error {
	_, err := tx.Exec(`
		INSERT INTO stock_ledger (product_name, lot_number, delta, unit, reason, timestamp)
		VALUES (?, ?, ?, ?, ?, datetime('now'))`,
		entry.ProductName, entry.LotNumber, entry.Delta, entry.Unit, entry.Reason)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry for %s: %w", entry.ProductName, err)
	}
	return nil
}

// GetLedgerEntriesByProduct は商品名の完全一致で変動履歴を古い順に返します。
// 商品名が別商品の部分文字列でも系列が混ざることはありません。
func GetLedgerEntriesByProduct(dbtx DBTX, productName string) ([]model.LedgerEntry, error) {
	entries := []model.LedgerEntry{}
	err := dbtx.Select(&entries, `
		SELECT * FROM stock_ledger
		WHERE product_name = ?
		ORDER BY timestamp, id`, productName)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries for %s: %w", productName, err)
	}
	return entries, nil
}
