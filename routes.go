package main

import (
	"net/http"

	"shroomworks/export"
	"shroomworks/history"
	"shroomworks/inventory"
	"shroomworks/manufacture"
	"shroomworks/recipe"
	"shroomworks/report"
	"shroomworks/uploads"

	"github.com/jmoiron/sqlx"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB) {

	// 在庫
	mux.HandleFunc("/", inventory.HomeHandler(dbConn))
	mux.HandleFunc("/add", inventory.AddInventoryHandler(dbConn))
	mux.HandleFunc("/edit/", inventory.EditInventoryHandler(dbConn))
	mux.HandleFunc("/delete/", inventory.DeleteInventoryHandler(dbConn))
	mux.HandleFunc("/import_inventory", inventory.ImportInventoryCSVHandler(dbConn))
	mux.HandleFunc("/uploads/", uploads.UploadedFileHandler())

	// レシピ
	mux.HandleFunc("/add_recipe", recipe.AddRecipeHandler(dbConn))
	mux.HandleFunc("/view_recipes", recipe.ViewRecipesHandler(dbConn))
	mux.HandleFunc("/edit_recipe/", recipe.EditRecipeHandler(dbConn))
	mux.HandleFunc("/delete_recipe/", recipe.DeleteRecipeHandler(dbConn))

	// 製造
	mux.HandleFunc("/manufacture/", manufacture.ManufactureHandler(dbConn))
	mux.HandleFunc("/produce/", manufacture.ProduceHandler(dbConn))

	// 履歴・チャート
	mux.HandleFunc("/more_history", history.MoreHistoryHandler(dbConn))
	mux.HandleFunc("/inventory_chart", report.InventoryChartHandler(dbConn))
	mux.HandleFunc("/inventory_history/", report.InventoryHistoryHandler(dbConn))

	// エクスポート
	mux.HandleFunc("/export_inventory", export.ExportInventoryHandler(dbConn))
	mux.HandleFunc("/export_recipes", export.ExportRecipesHandler(dbConn))

	// 設定 API
	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
