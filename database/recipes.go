package database

import (
	"database/sql"
	"fmt"
	"shroomworks/model"

	"github.com/jmoiron/sqlx"
)

func InsertRecipeInTx(tx *sqlx.Tx, drinkName string) (int64, error) {
	res, err := tx.Exec(`INSERT INTO recipes (drink_name) VALUES (?)`, drinkName)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe %q: %w", drinkName, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted recipe id: %w", err)
	}
	return id, nil
}

func UpdateRecipeNameInTx(tx *sqlx.Tx, recipeID int, drinkName string) error {
	if _, err := tx.Exec(`UPDATE recipes SET drink_name = ? WHERE id = ?`, drinkName, recipeID); err != nil {
		return fmt.Errorf("failed to update recipe %d: %w", recipeID, err)
	}
	return nil
}

// InsertIngredientsInTx は検証済みの材料リストをまとめて登録します。
func InsertIngredientsInTx(tx *sqlx.Tx, recipeID int64, ingredients []model.IngredientInput) error {
	stmt, err := tx.Prepare(`
		INSERT INTO ingredients (recipe_id, ingredient_name, quantity, unit)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare ingredient insert statement: %w", err)
	}
	defer stmt.Close()

	for _, ing := range ingredients {
		if _, err := stmt.Exec(recipeID, ing.Name, ing.Quantity, ing.Unit); err != nil {
			return fmt.Errorf("failed to insert ingredient %q for recipe %d: %w", ing.Name, recipeID, err)
		}
	}
	return nil
}

func DeleteIngredientsByRecipeInTx(tx *sqlx.Tx, recipeID int) error {
	if _, err := tx.Exec(`DELETE FROM ingredients WHERE recipe_id = ?`, recipeID); err != nil {
		return fmt.Errorf("failed to delete ingredients of recipe %d: %w", recipeID, err)
	}
	return nil
}

// DeleteRecipeInTx は材料行を先に消してからレシピ本体を消します
// (外部キー制約はないので明示カスケード)。
func DeleteRecipeInTx(tx *sqlx.Tx, recipeID int) error {
	if err := DeleteIngredientsByRecipeInTx(tx, recipeID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM recipes WHERE id = ?`, recipeID); err != nil {
		return fmt.Errorf("failed to delete recipe %d: %w", recipeID, err)
	}
	return nil
}

func GetRecipeByID(dbtx DBTX, recipeID int) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := dbtx.Get(&recipe, `SELECT * FROM recipes WHERE id = ?`, recipeID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get recipe %d: %w", recipeID, err)
	}
	return &recipe, nil
}

func GetIngredientsByRecipeID(dbtx DBTX, recipeID int) ([]model.Ingredient, error) {
	ingredients := []model.Ingredient{}
	err := dbtx.Select(&ingredients, `
		SELECT * FROM ingredients WHERE recipe_id = ? ORDER BY id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients of recipe %d: %w", recipeID, err)
	}
	return ingredients, nil
}

// GetRecipeIngredientRows は一覧表示と CSV エクスポートで使う JOIN 行を
// ドリンク単位でまとまる順序で返します。
func GetRecipeIngredientRows(dbtx DBTX) ([]model.RecipeIngredientRow, error) {
	rows := []model.RecipeIngredientRow{}
	err := dbtx.Select(&rows, `
		SELECT r.id AS recipe_id, r.drink_name, i.ingredient_name, i.quantity, i.unit
		FROM recipes r
		JOIN ingredients i ON r.id = i.recipe_id
		ORDER BY r.drink_name, r.id, i.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe ingredient rows: %w", err)
	}
	return rows, nil
}
