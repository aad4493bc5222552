package model

import "github.com/shopspring/decimal"

type ManufactureRecord struct {
	ID              int             `db:"id" json:"id"`
	DrinkName       string          `db:"drink_name" json:"drinkName"`
	ManufactureDate string          `db:"manufacture_date" json:"manufactureDate"`
	ExpirationDate  string          `db:"expiration_date" json:"expirationDate"`
	Quantity        decimal.Decimal `db:"quantity" json:"quantity"`
	Unit            string          `db:"unit" json:"unit"`
}

// ConsumptionLine は製造フォームの1原材料分の入力 (使用ロットと使用量) です。
type ConsumptionLine struct {
	IngredientName string
	LotNumber      string
	Quantity       decimal.Decimal
}
