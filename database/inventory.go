package database

import (
	"database/sql"
	"fmt"
	"shroomworks/model"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// SearchInventory は在庫を全件、または商品名・ロット番号の部分一致で返します。
// 該当なしは空スライスであってエラーではありません。
func SearchInventory(dbtx DBTX, term string) ([]model.InventoryLot, error) {
	items := []model.InventoryLot{}
	if term == "" {
		if err := dbtx.Select(&items, `SELECT * FROM inventory ORDER BY id`); err != nil {
			return nil, fmt.Errorf("failed to select inventory: %w", err)
		}
		return items, nil
	}
	pattern := "%" + term + "%"
	err := dbtx.Select(&items, `
		SELECT * FROM inventory
		WHERE product_name LIKE ? OR lot_number LIKE ?
		ORDER BY id`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search inventory for %q: %w", term, err)
	}
	return items, nil
}

// GetInventoryLotByID は id のロットを返します。存在しなければ sql.ErrNoRows です。
func GetInventoryLotByID(dbtx DBTX, id int) (*model.InventoryLot, error) {
	var lot model.InventoryLot
	if err := dbtx.Get(&lot, `SELECT * FROM inventory WHERE id = ?`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get inventory lot %d: %w", id, err)
	}
	return &lot, nil
}

func InsertInventoryLotInTx(tx *sqlx.Tx, lot model.InventoryLot) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO inventory (product_name, lot_number, quantity, unit, received_date, receipt_file)
		VALUES (?, ?, ?, ?, ?, ?)`,
		lot.ProductName, lot.LotNumber, lot.Quantity, lot.Unit, lot.ReceivedDate, lot.ReceiptFile)
	if err != nil {
		return 0, fmt.Errorf("failed to insert inventory lot %s (Lot: %s): %w", lot.ProductName, lot.LotNumber, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted inventory id: %w", err)
	}
	return id, nil
}

// UpdateInventoryLot は編集フォームの内容で1行を上書きします。
func UpdateInventoryLot(dbtx DBTX, lot model.InventoryLot) error {
	_, err := dbtx.Exec(`
		UPDATE inventory
		SET product_name = ?, lot_number = ?, quantity = ?, unit = ?, received_date = ?, receipt_file = ?
		WHERE id = ?`,
		lot.ProductName, lot.LotNumber, lot.Quantity, lot.Unit, lot.ReceivedDate, lot.ReceiptFile, lot.ID)
	if err != nil {
		return fmt.Errorf("failed to update inventory lot %d: %w", lot.ID, err)
	}
	return nil
}

func DeleteInventoryLot(dbtx DBTX, id int) error {
	if _, err := dbtx.Exec(`DELETE FROM inventory WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete inventory lot %d: %w", id, err)
	}
	return nil
}

// DeductInventoryInTx は (product_name, lot_number) に一致するロットから
// qty を減算し、影響行数を返します。0 行は呼び出し側で中断の判断材料に
// なります (在庫とロットの不一致を黙殺しない)。
func DeductInventoryInTx(tx *sqlx.Tx, productName, lotNumber string, qty decimal.Decimal) (int64, error) {
	res, err := tx.Exec(`
		UPDATE inventory SET quantity = quantity - ?
		WHERE product_name = ? AND lot_number = ?`,
		qty, productName, lotNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to deduct %s from %s (Lot: %s): %w", qty, productName, lotNumber, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows for %s: %w", productName, err)
	}
	return affected, nil
}

// DeductInventoryByProductInTx はロット指定なしの簡易引き落としです
// (/produce 用)。商品名に一致する全ロットから減算されます。
func DeductInventoryByProductInTx(tx *sqlx.Tx, productName string, qty decimal.Decimal) (int64, error) {
	res, err := tx.Exec(`
		UPDATE inventory SET quantity = quantity - ?
		WHERE product_name = ?`,
		qty, productName)
	if err != nil {
		return 0, fmt.Errorf("failed to deduct %s from %s: %w", qty, productName, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows for %s: %w", productName, err)
	}
	return affected, nil
}

// GetStockSummary は (商品名, 単位) ごとの在庫合計を返します。
func GetStockSummary(dbtx DBTX) ([]model.StockSummary, error) {
	rows := []model.StockSummary{}
	err := dbtx.Select(&rows, `
		SELECT product_name, SUM(quantity) AS total, unit
		FROM inventory
		GROUP BY product_name, unit
		ORDER BY product_name, unit`)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock summary: %w", err)
	}
	return rows, nil
}
