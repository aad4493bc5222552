// units は数量と単位の正規化を扱います。
// "lbs_oz" は保存時に総オンス (lbs×16 + oz) へ畳み込む、という
// 在庫テーブルの不変条件はすべてここを通して守られます。
package units

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Gram       = "g"
	Kilogram   = "kg"
	Milliliter = "ml"
	Liter      = "L"
	Ounce      = "oz"
	Pound      = "lbs"
	PoundOunce = "lbs_oz"
)

var validUnits = map[string]bool{
	Gram:       true,
	Kilogram:   true,
	Milliliter: true,
	Liter:      true,
	Ounce:      true,
	Pound:      true,
	PoundOunce: true,
}

var sixteen = decimal.NewFromInt(16)
var thousand = decimal.NewFromInt(1000)

// IsValid は unit が取り扱い単位かどうかを返します。
func IsValid(unit string) bool {
	return validUnits[unit]
}

// All は選択肢の表示順です。
func All() []string {
	return []string{Gram, Kilogram, Milliliter, Liter, Ounce, Pound, PoundOunce}
}

// Normalize はフォームの数量入力を保存用の1値に正規化します。
// unit が "lbs_oz" の場合は lbsField/ozField から総オンスを計算し、
// それ以外は quantityField をそのまま数値として解釈します。
// 空のフィールドは 0 として扱います。
func Normalize(unit, quantityField, lbsField, ozField string) (decimal.Decimal, error) {
	if !IsValid(unit) {
		return decimal.Zero, fmt.Errorf("unknown unit %q", unit)
	}

	if unit == PoundOunce {
		lbs, err := parseField(lbsField)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid lbs value %q", lbsField)
		}
		oz, err := parseField(ozField)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid oz value %q", ozField)
		}
		return lbs.Mul(sixteen).Add(oz), nil
	}

	qty, err := parseField(quantityField)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid quantity value %q", quantityField)
	}
	return qty, nil
}

func parseField(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// SplitLbsOz は総オンス値を編集フォーム表示用の lbs / oz に分解します。
// 16 での床除算と剰余なので、Normalize との往復で値は変わりません。
func SplitLbsOz(amount decimal.Decimal) (lbs, oz decimal.Decimal) {
	lbs = amount.Div(sixteen).Floor()
	oz = amount.Sub(lbs.Mul(sixteen))
	return lbs, oz
}

// ToBase は単位系ごとの基準単位 (g / ml / oz) に換算します。
// 台帳集計で kg と g の行を合算するための純粋関数です。
func ToBase(unit string, amount decimal.Decimal) (string, decimal.Decimal) {
	switch unit {
	case Kilogram:
		return Gram, amount.Mul(thousand)
	case Liter:
		return Milliliter, amount.Mul(thousand)
	case Pound:
		return Ounce, amount.Mul(sixteen)
	case PoundOunce:
		return Ounce, amount
	default:
		return unit, amount
	}
}

// Format は履歴文面と画面表示で使う小数1桁の数量表記です。
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(1)
}
