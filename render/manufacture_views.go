package render

import (
	"fmt"
	"strings"

	"shroomworks/model"
	"shroomworks/units"
)

// ManufactureForm は製造入力フォームを生成します。原材料ごとに
// 使用ロット番号と使用量を入力します (必要数量は参考表示)。
func ManufactureForm(recipe *model.Recipe, ingredients []model.Ingredient) string {
	var sb strings.Builder
	sb.WriteString("<h1>Manufacture Products</h1>\n")
	sb.WriteString(`<form method="post">` + "\n")
	sb.WriteString(fmt.Sprintf(`Drink Name: <input type="text" name="drink_name" value="%s" required><br>`, esc(recipe.DrinkName)))
	sb.WriteString("\n")
	sb.WriteString(`Manufacture Date: <input type="date" name="manufacture_date" required><br>` + "\n")
	sb.WriteString(`Expiration Date: <input type="date" name="expiration_date" required><br>` + "\n")
	sb.WriteString(`Batch Quantity: <input type="text" name="quantity" required>` + "\n")
	sb.WriteString(fmt.Sprintf(`<select name="unit">%s</select><br>`, UnitOptions(units.Milliliter)))
	sb.WriteString("\n")

	for _, ing := range ingredients {
		sb.WriteString(fmt.Sprintf("<p>Ingredient: %s (Required: %s %s)</p>\n",
			esc(ing.IngredientName), units.Format(ing.Quantity), esc(ing.Unit)))
		sb.WriteString(`Lot Number: <input type="text" name="lot_number" required><br>` + "\n")
		sb.WriteString(`Used Quantity: <input type="text" name="used_quantity" required><br>` + "\n")
	}

	sb.WriteString(`<input type="submit" value="Manufacture">` + "\n")
	sb.WriteString("</form>\n")
	sb.WriteString(`<a href="/view_recipes">Back to Recipes</a>` + "\n")
	return Page("Manufacture Products", sb.String())
}
