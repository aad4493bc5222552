package inventory

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"shroomworks/config"
	"shroomworks/database"
	"shroomworks/model"
	"shroomworks/render"
	"shroomworks/units"
	"shroomworks/uploads"

	"github.com/jmoiron/sqlx"
)

// HomeHandler はホーム画面を表示します。POST は検索フォームです。
func HomeHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		searchTerm := ""
		if r.Method == http.MethodPost {
			searchTerm = r.FormValue("search")
		}

		items, err := database.SearchInventory(db, searchTerm)
		if err != nil {
			log.Printf("Failed to search inventory: %v", err)
			http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
			return
		}

		cfg := config.GetConfig()
		history, err := database.GetRecentHistory(db, cfg.HistoryDisplayLimit)
		if err != nil {
			log.Printf("Failed to load history: %v", err)
			http.Error(w, "Failed to load history", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, render.HomePage(items, searchTerm, history))
	}
}

// AddInventoryHandler は在庫の追加を処理します。追加と同じトランザクションで
// 履歴と在庫台帳にも1件ずつ追記します。
func AddInventoryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, render.AddInventoryForm())
			return
		}

		productName := r.FormValue("product_name")
		lotNumber := r.FormValue("lot_number")
		unit := r.FormValue("unit")
		receivedDate := r.FormValue("received_date")

		quantity, err := units.Normalize(unit,
			r.FormValue("quantity"), r.FormValue("quantity_lbs"), r.FormValue("quantity_oz"))
		if err != nil {
			http.Error(w, "Error: Invalid quantity values.", http.StatusBadRequest)
			return
		}

		cfg := config.GetConfig()
		filename, err := uploads.SaveReceiptFile(r, "file", cfg.UploadFolderPath)
		if err != nil {
			log.Printf("Failed to save receipt file: %v", err)
			http.Error(w, "Failed to save receipt file", http.StatusInternalServerError)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		lot := model.InventoryLot{
			ProductName:  productName,
			LotNumber:    lotNumber,
			Quantity:     quantity,
			Unit:         unit,
			ReceivedDate: receivedDate,
			ReceiptFile:  sql.NullString{String: filename, Valid: filename != ""},
		}
		if _, err := database.InsertInventoryLotInTx(tx, lot); err != nil {
			log.Printf("Failed to insert inventory: %v", err)
			http.Error(w, "Failed to add inventory", http.StatusInternalServerError)
			return
		}

		details := fmt.Sprintf("Added %s %s of %s (Lot: %s) on %s",
			units.Format(quantity), unit, productName, lotNumber, receivedDate)
		if err := database.InsertHistoryInTx(tx, "Add Inventory", details); err != nil {
			http.Error(w, "Failed to record history", http.StatusInternalServerError)
			return
		}

		entry := model.LedgerEntry{
			ProductName: productName,
			LotNumber:   lotNumber,
			Delta:       quantity,
			Unit:        unit,
			Reason:      "add",
		}
		if err := database.InsertLedgerEntryInTx(tx, entry); err != nil {
			http.Error(w, "Failed to record ledger entry", http.StatusInternalServerError)
			return
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// EditInventoryHandler は /edit/{id} の表示と更新を処理します。
// 新しい添付がなければ既存のファイル名を引き継ぎます。
func EditInventoryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDFromPath(r.URL.Path, "/edit/")
		if err != nil {
			http.Error(w, "Invalid inventory id", http.StatusBadRequest)
			return
		}

		item, err := database.GetInventoryLotByID(db, id)
		if err != nil {
			if err == sql.ErrNoRows {
				http.NotFound(w, r)
				return
			}
			log.Printf("Failed to load inventory lot %d: %v", id, err)
			http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
			return
		}

		if r.Method != http.MethodPost {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, render.EditInventoryForm(item))
			return
		}

		unit := r.FormValue("unit")
		quantity, err := units.Normalize(unit,
			r.FormValue("quantity"), r.FormValue("quantity_lbs"), r.FormValue("quantity_oz"))
		if err != nil {
			http.Error(w, "Error: Invalid quantity values.", http.StatusBadRequest)
			return
		}

		cfg := config.GetConfig()
		filename, err := uploads.SaveReceiptFile(r, "file", cfg.UploadFolderPath)
		if err != nil {
			log.Printf("Failed to save receipt file: %v", err)
			http.Error(w, "Failed to save receipt file", http.StatusInternalServerError)
			return
		}
		receiptFile := item.ReceiptFile // 新規アップロードがなければ既存を維持
		if filename != "" {
			receiptFile = sql.NullString{String: filename, Valid: true}
		}

		updated := model.InventoryLot{
			ID:           id,
			ProductName:  r.FormValue("product_name"),
			LotNumber:    r.FormValue("lot_number"),
			Quantity:     quantity,
			Unit:         unit,
			ReceivedDate: r.FormValue("received_date"),
			ReceiptFile:  receiptFile,
		}
		if err := database.UpdateInventoryLot(db, updated); err != nil {
			log.Printf("Failed to update inventory lot %d: %v", id, err)
			http.Error(w, "Failed to update inventory", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// DeleteInventoryHandler は /delete/{id} (POST) を処理します。
func DeleteInventoryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, err := parseIDFromPath(r.URL.Path, "/delete/")
		if err != nil {
			http.Error(w, "Invalid inventory id", http.StatusBadRequest)
			return
		}
		if err := database.DeleteInventoryLot(db, id); err != nil {
			log.Printf("Failed to delete inventory lot %d: %v", id, err)
			http.Error(w, "Failed to delete inventory", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func parseIDFromPath(path, prefix string) (int, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if idStr == "" || idStr == path {
		return 0, fmt.Errorf("missing id in path %s", path)
	}
	return strconv.Atoi(idStr)
}
