package report

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"net/url"
	"strings"

	"shroomworks/database"
	"shroomworks/model"
	"shroomworks/render"
	"shroomworks/units"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// InventoryChartHandler は在庫全体の棒グラフページを表示します。
// 棒の下の商品名リンクから商品別の履歴チャートへ遷移できます。
func InventoryChartHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := database.GetStockSummary(db)
		if err != nil {
			log.Printf("Failed to load stock summary: %v", err)
			http.Error(w, "Failed to load stock summary", http.StatusInternalServerError)
			return
		}

		var body strings.Builder
		body.WriteString("<h1>Inventory Chart</h1>\n")
		body.WriteString(renderBarChartSVG(rows))
		body.WriteString("<ul>\n")
		for _, row := range rows {
			body.WriteString(fmt.Sprintf(
				`<li><a href="/inventory_history/%s">%s</a> (%s %s)</li>`,
				url.PathEscape(row.ProductName), html.EscapeString(row.ProductName),
				units.Format(row.Total), html.EscapeString(row.Unit)))
			body.WriteString("\n")
		}
		body.WriteString("</ul>\n")
		body.WriteString(`<p><a href="/">Back to Inventory</a></p>` + "\n")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, render.Page("Inventory Chart", body.String()))
	}
}

// InventoryHistoryHandler は /inventory_history/{product} を処理します。
// 台帳の変動行を基準単位に換算しながら累計し、折れ線グラフにします。
func InventoryHistoryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		escaped := strings.TrimPrefix(r.URL.Path, "/inventory_history/")
		productName, err := url.PathUnescape(escaped)
		if err != nil || productName == "" {
			http.Error(w, "Invalid product name", http.StatusBadRequest)
			return
		}

		entries, err := database.GetLedgerEntriesByProduct(db, productName)
		if err != nil {
			log.Printf("Failed to load ledger for %s: %v", productName, err)
			http.Error(w, "Failed to load product history", http.StatusInternalServerError)
			return
		}

		points, baseUnit := buildSeries(entries)

		var body strings.Builder
		body.WriteString(fmt.Sprintf("<h1>History for %s</h1>\n", html.EscapeString(productName)))
		body.WriteString(renderLineChartSVG(points, baseUnit))
		body.WriteString(`<p><a href="/inventory_chart">Back to Inventory Chart</a></p>` + "\n")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, render.Page("Product History", body.String()))
	}
}

// buildSeries は台帳行を時系列の累計値に変換します。kg と g のような
// 混在は基準単位に揃えてから合算します。
func buildSeries(entries []model.LedgerEntry) ([]model.SeriesPoint, string) {
	var points []model.SeriesPoint
	baseUnit := ""
	running := decimal.Zero

	for _, e := range entries {
		unit, amount := units.ToBase(e.Unit, e.Delta)
		if baseUnit == "" {
			baseUnit = unit
		}
		running = running.Add(amount)
		points = append(points, model.SeriesPoint{
			Timestamp: e.Timestamp,
			Total:     running,
		})
	}
	return points, baseUnit
}
