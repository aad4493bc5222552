package model

import "github.com/shopspring/decimal"

// HistoryEntry は追記専用の操作履歴1行です。アプリケーションからの
// 更新・削除はありません。
type HistoryEntry struct {
	ID         int    `db:"id" json:"id"`
	ActionType string `db:"action_type" json:"actionType"`
	Details    string `db:"details" json:"details"`
	Timestamp  string `db:"timestamp" json:"timestamp"`
}

// LedgerEntry は在庫変動の構造化された1件です。チャートはこのテーブルを
// 集計し、history の文章を再パースすることはありません。
type LedgerEntry struct {
	ID          int             `db:"id" json:"id"`
	ProductName string          `db:"product_name" json:"productName"`
	LotNumber   string          `db:"lot_number" json:"lotNumber"`
	Delta       decimal.Decimal `db:"delta" json:"delta"`
	Unit        string          `db:"unit" json:"unit"`
	Reason      string          `db:"reason" json:"reason"`
	Timestamp   string          `db:"timestamp" json:"timestamp"`
}

// SeriesPoint は商品別履歴チャートの1点 (累計値) です。
type SeriesPoint struct {
	Timestamp string          `json:"timestamp"`
	Total     decimal.Decimal `json:"total"`
}
