package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"shroomworks/units"

	"github.com/shopspring/decimal"
)

type ParsedInventoryCSVRecord struct {
	ProductName  string
	LotNumber    string
	Quantity     decimal.Decimal
	Unit         string
	ReceivedDate string
}

// ParseInventoryCSV は在庫取込CSVを解析します。ヘッダーはエクスポートと
// 同じ列名 (Product Name / Lot Number / Quantity / Unit / Received Date)。
// 不正な行が1つでもあれば全体をエラーにします (部分取込はしない)。
func ParseInventoryCSV(r io.Reader) ([]ParsedInventoryCSVRecord, error) {
	reader := csv.NewReader(DecodeBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	requiredHeaders := []string{"Product Name", "Lot Number", "Quantity", "Unit", "Received Date"}
	colIndex, err := getColIndex(header, requiredHeaders)
	if err != nil {
		return nil, err
	}

	get := func(rec []string, name string) string {
		idx := colIndex[name]
		if idx < len(rec) {
			return strings.TrimSpace(rec[idx])
		}
		return ""
	}

	var records []ParsedInventoryCSVRecord
	line := 1
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		productName := get(rec, "Product Name")
		lotNumber := get(rec, "Lot Number")
		unit := get(rec, "Unit")
		if productName == "" {
			return nil, fmt.Errorf("line %d: product name must not be empty", line)
		}
		if !units.IsValid(unit) {
			return nil, fmt.Errorf("line %d: unknown unit %q", line, unit)
		}

		qty, err := decimal.NewFromString(get(rec, "Quantity"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid quantity %q", line, get(rec, "Quantity"))
		}

		records = append(records, ParsedInventoryCSVRecord{
			ProductName:  productName,
			LotNumber:    lotNumber,
			Quantity:     qty,
			Unit:         unit,
			ReceivedDate: get(rec, "Received Date"),
		})
	}
	return records, nil
}
