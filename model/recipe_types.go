package model

import "github.com/shopspring/decimal"

type Recipe struct {
	ID        int    `db:"id" json:"id"`
	DrinkName string `db:"drink_name" json:"drinkName"`
}

type Ingredient struct {
	ID             int             `db:"id" json:"id"`
	RecipeID       int             `db:"recipe_id" json:"recipeId"`
	IngredientName string          `db:"ingredient_name" json:"ingredientName"`
	Quantity       decimal.Decimal `db:"quantity" json:"quantity"`
	Unit           string          `db:"unit" json:"unit"`
}

// IngredientInput はフォームの並列配列を検証済みの構造化リストにしたものです。
type IngredientInput struct {
	Name     string
	Quantity decimal.Decimal
	Unit     string
}

// RecipeIngredientRow は recipes と ingredients の JOIN 1行分です
// (一覧表示と CSV エクスポートで共用)。
type RecipeIngredientRow struct {
	RecipeID       int             `db:"recipe_id" json:"recipeId"`
	DrinkName      string          `db:"drink_name" json:"drinkName"`
	IngredientName string          `db:"ingredient_name" json:"ingredientName"`
	Quantity       decimal.Decimal `db:"quantity" json:"quantity"`
	Unit           string          `db:"unit" json:"unit"`
}
