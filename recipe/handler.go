package recipe

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
)

// parseIngredientRows はフォームの並列配列 (ingredient_name / quantity /
// unit / quantity_lbs / quantity_oz) を検証して構造化リストに変換します。
// 長さ不一致・空の材料名・数量の書式エラーはすべてエラーです。
func parseIngredientRows(r *http.Request) ([]model.IngredientInput, error) {
	names := r.Form["ingredient_name"]
	quantities := r.Form["quantity"]
	unitValues := r.Form["unit"]
	lbsValues := r.Form["quantity_lbs"]
	ozValues := r.Form["quantity_oz"]

	if len(names) == 0 {
		return nil, fmt.Errorf("at least one ingredient is required")
	}
	if len(quantities) != len(names) || len(unitValues) != len(names) {
		return nil, fmt.Errorf("ingredient fields are mismatched (%d names, %d quantities, %d units)",
			len(names), len(quantities), len(unitValues))
	}

	get := func(values []string, i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}

	var ingredients []model.IngredientInput
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("ingredient %d: name must not be empty", i+1)
		}
		unit := unitValues[i]
		quantity, err := units.Normalize(unit, quantities[i], get(lbsValues, i), get(ozValues, i))
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", i+1, err)
		}
		ingredients = append(ingredients, model.IngredientInput{
			Name:     name,
			Quantity: quantity,
			Unit:     unit,
		})
	}
	return ingredients, nil
}

// AddRecipeHandler はレシピの追加を処理します。
func AddRecipeHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, render.AddRecipeForm())
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		drinkName := r.FormValue("drink_name")
		ingredients, err := parseIngredientRows(r)
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

		recipeID, err := database.InsertRecipeInTx(tx, drinkName)
		if err != nil {
			log.Printf("Failed to insert recipe: %v", err)
			http.Error(w, "Failed to add recipe", http.StatusInternalServerError)
			return
		}
		if err := database.InsertIngredientsInTx(tx, recipeID, ingredients); err != nil {
			log.Printf("Failed to insert ingredients: %v", err)
			http.Error(w, "Failed to add ingredients", http.StatusInternalServerError)
			return
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/view_recipes", http.StatusSeeOther)
	}
}

// EditRecipeHandler は /edit_recipe/{id} の表示と更新を処理します。
// 更新は材料の全削除・全再登録です (差分更新はしない)。
func EditRecipeHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := parseIDFromPath(r.URL.Path, "/edit_recipe/")
		if err != nil {
			http.Error(w, "Invalid recipe id", http.StatusBadRequest)
			return
		}

		if r.Method != http.MethodPost {
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
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, render.EditRecipeForm(recipe, ingredients))
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		ingredients, err := parseIngredientRows(r)
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

		if err := database.UpdateRecipeNameInTx(tx, recipeID, r.FormValue("drink_name")); err != nil {
			log.Printf("Failed to update recipe %d: %v", recipeID, err)
			http.Error(w, "Failed to update recipe", http.StatusInternalServerError)
			return
		}
		if err := database.DeleteIngredientsByRecipeInTx(tx, recipeID); err != nil {
			http.Error(w, "Failed to replace ingredients", http.StatusInternalServerError)
			return
		}
		if err := database.InsertIngredientsInTx(tx, int64(recipeID), ingredients); err != nil {
			http.Error(w, "Failed to replace ingredients", http.StatusInternalServerError)
			return
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/view_recipes", http.StatusSeeOther)
	}
}

// ViewRecipesHandler はレシピ一覧を表示します。
func ViewRecipesHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := database.GetRecipeIngredientRows(db)
		if err != nil {
			log.Printf("Failed to load recipes: %v", err)
			http.Error(w, "Failed to load recipes", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, render.RecipeList(rows))
	}
}

// DeleteRecipeHandler は /delete_recipe/{id} (POST) を処理します。
// 材料行も同一トランザクションで削除します (孤児を残さない)。
func DeleteRecipeHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		recipeID, err := parseIDFromPath(r.URL.Path, "/delete_recipe/")
		if err != nil {
			http.Error(w, "Invalid recipe id", http.StatusBadRequest)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		if err := database.DeleteRecipeInTx(tx, recipeID); err != nil {
			log.Printf("Failed to delete recipe %d: %v", recipeID, err)
			http.Error(w, "Failed to delete recipe", http.StatusInternalServerError)
			return
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/view_recipes", http.StatusSeeOther)
	}
}

func parseIDFromPath(path, prefix string) (int, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if idStr == "" || idStr == path {
		return 0, fmt.Errorf("missing id in path %s", path)
	}
	return strconv.Atoi(idStr)
}
