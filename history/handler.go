package history

import (
	"fmt"
	"log"
	"net/http"

	"shroomworks/database"
	"shroomworks/render"

	"github.com/jmoiron/sqlx"
)

// MoreHistoryHandler は全履歴を新しい順で表示します。
func MoreHistoryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := database.GetAllHistory(db)
		if err != nil {
			log.Printf("Failed to load history: %v", err)
			http.Error(w, "Failed to load history", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, render.HistoryPage(entries))
	}
}
