package loader

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"shroomworks/database"

	"github.com/jmoiron/sqlx"
)

// InitDatabase はスキーマを適用し、旧データベースファイル向けの
// カラム追加マイグレーションを実行します。
func InitDatabase(db *sqlx.DB) error {
	log.Println("Applying database schema...")
	if _, err := db.Exec(database.Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Println("Schema applied successfully.")

	// 添付ファイル対応前に作られた inventory.db には receipt_file がない
	if err := ensureReceiptFileColumn(db); err != nil {
		return fmt.Errorf("failed to migrate inventory table: %w", err)
	}

	return nil
}

func ensureReceiptFileColumn(db *sqlx.DB) error {
	rows, err := db.Query(`PRAGMA table_info(inventory)`)
	if err != nil {
		return fmt.Errorf("failed to read inventory table info: %w", err)
	}
	defer rows.Close()

	hasColumn := false
	for rows.Next() {
		var cid int
		var name, colType string
		var notNull int
		var dfltValue sql.NullString
		var pk int
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("failed to scan table info row: %w", err)
		}
		if name == "receipt_file" {
			hasColumn = true
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate table info: %w", err)
	}

	if !hasColumn {
		log.Println("Adding receipt_file column to inventory table...")
		if _, err := db.Exec(`ALTER TABLE inventory ADD COLUMN receipt_file TEXT`); err != nil {
			return fmt.Errorf("failed to add receipt_file column: %w", err)
		}
	}
	return nil
}

// EnsureDirs はアップロード・エクスポート用のフォルダを作成します。
func EnsureDirs(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	}
	return nil
}
