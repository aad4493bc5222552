package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// InventoryLot は (product_name, lot_number) で識別される入荷ロット1件です。
// unit が "lbs_oz" の場合、quantity は書き込み時に総オンス (lbs×16 + oz) に
// 正規化された値を保持します。
type InventoryLot struct {
	ID           int             `db:"id" json:"id"`
	ProductName  string          `db:"product_name" json:"productName"`
	LotNumber    string          `db:"lot_number" json:"lotNumber"`
	Quantity     decimal.Decimal `db:"quantity" json:"quantity"`
	Unit         string          `db:"unit" json:"unit"`
	ReceivedDate string          `db:"received_date" json:"receivedDate"`
	ReceiptFile  sql.NullString  `db:"receipt_file" json:"receiptFile"`
}

// StockSummary は在庫チャート用の (商品, 単位) ごとの合計行です。
type StockSummary struct {
	ProductName string          `db:"product_name" json:"productName"`
	Total       decimal.Decimal `db:"total" json:"total"`
	Unit        string          `db:"unit" json:"unit"`
}
