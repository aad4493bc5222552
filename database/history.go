package database

import (
	"fmt"
	"shroomworks/model"

	"github.com/jmoiron/sqlx"
)

// InsertHistoryInTx は履歴を1行追記します。履歴は必ず元の変更と同じ
// トランザクション内で書かれます。
func InsertHistoryInTx(tx *sqlx.Tx, actionType, details string) error {
	_, err := tx.Exec(`
		INSERT INTO history (action_type, details, timestamp)
		VALUES (?, ?, datetime('now'))`,
		actionType, details)
	if err != nil {
		return fmt.Errorf("failed to insert history entry (%s): %w", actionType, err)
	}
	return nil
}

// GetRecentHistory はホーム画面用に新しい順で limit 件を返します。
func GetRecentHistory(dbtx DBTX, limit int) ([]model.HistoryEntry, error) {
	entries := []model.HistoryEntry{}
	err := dbtx.Select(&entries, `
		SELECT * FROM history ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent history: %w", err)
	}
	return entries, nil
}

func GetAllHistory(dbtx DBTX) ([]model.HistoryEntry, error) {
	entries := []model.HistoryEntry{}
	err := dbtx.Select(&entries, `SELECT * FROM history ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return entries, nil
}
