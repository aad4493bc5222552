package inventory

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"shroomworks/database"
	"shroomworks/model"
	"shroomworks/parsers"
	"shroomworks/units"

	"github.com/jmoiron/sqlx"
)

// ImportInventoryCSVHandler は在庫CSVの一括取込を処理します。
// 1行でも不正があれば取込全体を中止します。
func ImportInventoryCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "Failed to read CSV file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		records, err := parsers.ParseInventoryCSV(file)
		if err != nil {
			http.Error(w, "Failed to parse CSV file: "+err.Error(), http.StatusBadRequest)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		for _, rec := range records {
			lot := model.InventoryLot{
				ProductName:  rec.ProductName,
				LotNumber:    rec.LotNumber,
				Quantity:     rec.Quantity,
				Unit:         rec.Unit,
				ReceivedDate: rec.ReceivedDate,
				ReceiptFile:  sql.NullString{},
			}
			if _, err := database.InsertInventoryLotInTx(tx, lot); err != nil {
				log.Printf("Failed to import inventory row: %v", err)
				http.Error(w, "Failed to import inventory", http.StatusInternalServerError)
				return
			}

			details := fmt.Sprintf("Added %s %s of %s (Lot: %s) on %s",
				units.Format(rec.Quantity), rec.Unit, rec.ProductName, rec.LotNumber, rec.ReceivedDate)
			if err := database.InsertHistoryInTx(tx, "Add Inventory", details); err != nil {
				http.Error(w, "Failed to record history", http.StatusInternalServerError)
				return
			}

			entry := model.LedgerEntry{
				ProductName: rec.ProductName,
				LotNumber:   rec.LotNumber,
				Delta:       rec.Quantity,
				Unit:        rec.Unit,
				Reason:      "import",
			}
			if err := database.InsertLedgerEntryInTx(tx, entry); err != nil {
				http.Error(w, "Failed to record ledger entry", http.StatusInternalServerError)
				return
			}
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
			return
		}

		log.Printf("Imported %d inventory rows from CSV", len(records))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
