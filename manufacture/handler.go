package manufacture

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"shroomworks/database"
	"shroomworks/model"
	"shroomworks/render"
	"shroomworks/units"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// ManufactureHandler は /manufacture/{recipe_id} を処理します。
// GET は入力フォーム、POST は製造の確定です。確定は在庫引き落とし・
// 製造記録・履歴・台帳をすべて1トランザクションで行い、ロットが
// 見つからない引き落としが1つでもあれば全体を中止します。
func ManufactureHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := parseIDFromPath(r.URL.Path, "/manufacture/")
		if err != nil {
			http.Error(w, "Invalid recipe id", http.StatusBadRequest)
			return
		}

		recipe, err := database.GetRecipeByID(db, recipeID)
		if err != nil {
			if err == sql.ErrNoRows {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Failed to load recipe", http.StatusInternalServerError)
			return
		}
		ingredients, err := database.GetIngredientsByRecipeID(db, recipeID)
		if err != nil {
			http.Error(w, "Failed to load ingredients", http.StatusInternalServerError)
			return
		}

		if r.Method != http.MethodPost {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, render.ManufactureForm(recipe, ingredients))
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		drinkName := r.FormValue("drink_name")
		manufactureDate := r.FormValue("manufacture_date")
		expirationDate := r.FormValue("expiration_date")
		batchUnit := r.FormValue("unit")

		batchQuantity, err := units.Normalize(batchUnit,
			r.FormValue("quantity"), "", "")
		if err != nil {
			http.Error(w, "Error: Invalid batch quantity.", http.StatusBadRequest)
			return
		}

		lines, err := parseConsumptionLines(r, ingredients)
		if err != nil {
			http.Error(w, "Error: "+err.Error(), http.StatusBadRequest)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		// 在庫から材料を引き落とす。該当ロットなしは全体を中止する。
		for _, line := range lines {
			affected, err := database.DeductInventoryInTx(tx, line.IngredientName, line.LotNumber, line.Quantity)
			if err != nil {
				log.Printf("Failed to deduct inventory: %v", err)
				http.Error(w, "Failed to deduct inventory", http.StatusInternalServerError)
				return
			}
			if affected == 0 {
				http.Error(w, fmt.Sprintf("Error: no inventory lot matching %s (Lot: %s).",
					line.IngredientName, line.LotNumber), http.StatusBadRequest)
				return
			}
		}

		rec := model.ManufactureRecord{
			DrinkName:       drinkName,
			ManufactureDate: manufactureDate,
			ExpirationDate:  expirationDate,
			Quantity:        batchQuantity,
			Unit:            batchUnit,
		}
		if err := database.InsertManufactureInTx(tx, rec); err != nil {
			log.Printf("Failed to insert manufacture record: %v", err)
			http.Error(w, "Failed to record manufacture", http.StatusInternalServerError)
			return
		}

		details := fmt.Sprintf("Manufactured %s %s of %s on %s, Expiry: %s",
			units.Format(batchQuantity), batchUnit, drinkName, manufactureDate, expirationDate)
		if err := database.InsertHistoryInTx(tx, "Manufacture", details); err != nil {
			http.Error(w, "Failed to record history", http.StatusInternalServerError)
			return
		}

		for _, line := range lines {
			entry := model.LedgerEntry{
				ProductName: line.IngredientName,
				LotNumber:   line.LotNumber,
				Delta:       line.Quantity.Neg(),
				Unit:        unitForIngredient(ingredients, line.IngredientName),
				Reason:      "manufacture",
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
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// parseConsumptionLines は lot_number / used_quantity の並列配列を
// 材料数と突き合わせて検証します。
func parseConsumptionLines(r *http.Request, ingredients []model.Ingredient) ([]model.ConsumptionLine, error) {
	lotNumbers := r.Form["lot_number"]
	usedQuantities := r.Form["used_quantity"]

	if len(lotNumbers) != len(ingredients) || len(usedQuantities) != len(ingredients) {
		return nil, fmt.Errorf("consumption fields are mismatched (%d ingredients, %d lots, %d quantities)",
			len(ingredients), len(lotNumbers), len(usedQuantities))
	}

	var lines []model.ConsumptionLine
	for i, ing := range ingredients {
		qty, err := decimal.NewFromString(strings.TrimSpace(usedQuantities[i]))
		if err != nil {
			return nil, fmt.Errorf("ingredient %s: invalid used quantity %q", ing.IngredientName, usedQuantities[i])
		}
		lines = append(lines, model.ConsumptionLine{
			IngredientName: ing.IngredientName,
			LotNumber:      lotNumbers[i],
			Quantity:       qty,
		})
	}
	return lines, nil
}

func unitForIngredient(ingredients []model.Ingredient, name string) string {
	for _, ing := range ingredients {
		if ing.IngredientName == name {
			return ing.Unit
		}
	}
	return ""
}

// ProduceHandler は /produce/{recipe_id} (POST) を処理します。
// レシピの規定量を商品名だけで引き落とす簡易製造です。
func ProduceHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		recipeID, err := parseIDFromPath(r.URL.Path, "/produce/")
		if err != nil {
			http.Error(w, "Invalid recipe id", http.StatusBadRequest)
			return
		}

		recipe, err := database.GetRecipeByID(db, recipeID)
		if err != nil {
			if err == sql.ErrNoRows {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Failed to load recipe", http.StatusInternalServerError)
			return
		}
		ingredients, err := database.GetIngredientsByRecipeID(db, recipeID)
		if err != nil {
			http.Error(w, "Failed to load ingredients", http.StatusInternalServerError)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		for _, ing := range ingredients {
			affected, err := database.DeductInventoryByProductInTx(tx, ing.IngredientName, ing.Quantity)
			if err != nil {
				log.Printf("Failed to deduct inventory: %v", err)
				http.Error(w, "Failed to deduct inventory", http.StatusInternalServerError)
				return
			}
			if affected == 0 {
				http.Error(w, fmt.Sprintf("Error: no inventory for %s.", ing.IngredientName), http.StatusBadRequest)
				return
			}

			entry := model.LedgerEntry{
				ProductName: ing.IngredientName,
				LotNumber:   "",
				Delta:       ing.Quantity.Neg(),
				Unit:        ing.Unit,
				Reason:      "produce",
			}
			if err := database.InsertLedgerEntryInTx(tx, entry); err != nil {
				http.Error(w, "Failed to record ledger entry", http.StatusInternalServerError)
				return
			}
		}

		details := fmt.Sprintf("Manufactured 1.0 batch of %s using recipe quantities", recipe.DrinkName)
		if err := database.InsertHistoryInTx(tx, "Manufacture", details); err != nil {
			http.Error(w, "Failed to record history", http.StatusInternalServerError)
			return
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
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
