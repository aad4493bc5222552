package export

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"shroomworks/config"
	"shroomworks/database"
	"shroomworks/units"

	"github.com/jmoiron/sqlx"
)

// utf8BOM を先頭に付けると Excel が UTF-8 として開きます。
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// writeCSVRow は全フィールドをクォートし CRLF で閉じます。
func writeCSVRow(buf *bytes.Buffer, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}

// writeExportFile は一時ファイルに書いてから rename します。
// 途中で失敗しても既存のエクスポートが壊れた状態で残りません。
func writeExportFile(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	finalPath := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp export file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close export file: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to finalize export file: %w", err)
	}
	return finalPath, nil
}

func serveCSV(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.Write(data)
}

// ExportInventoryHandler は在庫全件を inventory_export.csv に書き出して
// ダウンロードさせます。列は取込側が要求する5列を含みます。
func ExportInventoryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lots, err := database.SearchInventory(db, "")
		if err != nil {
			log.Printf("Failed to load inventory for export: %v", err)
			http.Error(w, "Failed to export inventory", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		buf.Write(utf8BOM)
		writeCSVRow(&buf, "ID", "Product Name", "Lot Number", "Quantity", "Unit", "Received Date", "Receipt File")
		for _, lot := range lots {
			receipt := ""
			if lot.ReceiptFile.Valid {
				receipt = lot.ReceiptFile.String
			}
			writeCSVRow(&buf,
				fmt.Sprintf("%d", lot.ID),
				lot.ProductName,
				lot.LotNumber,
				lot.Quantity.String(),
				lot.Unit,
				lot.ReceivedDate,
				receipt)
		}

		cfg := config.GetConfig()
		path, err := writeExportFile(cfg.ExportFolderPath, "inventory_export.csv", buf.Bytes())
		if err != nil {
			log.Printf("Failed to write inventory export: %v", err)
			http.Error(w, "Failed to export inventory", http.StatusInternalServerError)
			return
		}
		log.Printf("Exported %d inventory rows to %s", len(lots), path)
		serveCSV(w, "inventory_export.csv", buf.Bytes())
	}
}

// ExportRecipesHandler はレシピと材料の JOIN 行を recipes_export.csv に
// 書き出してダウンロードさせます。
func ExportRecipesHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := database.GetRecipeIngredientRows(db)
		if err != nil {
			log.Printf("Failed to load recipes for export: %v", err)
			http.Error(w, "Failed to export recipes", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		buf.Write(utf8BOM)
		writeCSVRow(&buf, "Recipe ID", "Drink Name", "Ingredient Name", "Quantity", "Unit")
		for _, row := range rows {
			writeCSVRow(&buf,
				fmt.Sprintf("%d", row.RecipeID),
				row.DrinkName,
				row.IngredientName,
				units.Format(row.Quantity),
				row.Unit)
		}

		cfg := config.GetConfig()
		path, err := writeExportFile(cfg.ExportFolderPath, "recipes_export.csv", buf.Bytes())
		if err != nil {
			log.Printf("Failed to write recipes export: %v", err)
			http.Error(w, "Failed to export recipes", http.StatusInternalServerError)
			return
		}
		log.Printf("Exported %d recipe rows to %s", len(rows), path)
		serveCSV(w, "recipes_export.csv", buf.Bytes())
	}
}
