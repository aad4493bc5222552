package render

import (
	"fmt"
	"strings"

	"shroomworks/model"
	"shroomworks/units"
)

// ingredientFieldSet は材料1行分の入力欄です。追加・編集フォームで共用します。
func ingredientFieldSet(index int, name, quantity, unit, lbs, oz string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="quantity-row">` + "\n")
	sb.WriteString(fmt.Sprintf(`Ingredient %d: <input type="text" name="ingredient_name" value="%s"><br>`, index, esc(name)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`Unit: <select name="unit" onchange="toggleLbsOzFields(this)">%s</select><br>`, UnitOptions(unit)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(
		`<div class="lbs-oz-fields" style="display:none;">Lbs: <input type="text" name="quantity_lbs" value="%s"> Oz: <input type="text" name="quantity_oz" value="%s"></div>`,
		esc(lbs), esc(oz)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<div class="plain-quantity">Quantity: <input type="text" name="quantity" value="%s"></div>`, esc(quantity)))
	sb.WriteString("\n</div>\n")
	return sb.String()
}

// addIngredientScript は「Add Ingredient」で行を増やすスクリプトです。
// 追加行も並列配列の長さが揃うように、全フィールドを必ず出力します。
const addIngredientScript = `
<script>
function addIngredient() {
    const container = document.getElementById('ingredientContainer');
    const count = container.querySelectorAll('input[name="ingredient_name"]').length;
    const div = document.createElement('div');
    div.className = 'quantity-row';
    div.innerHTML = 'Ingredient ' + (count + 1) + ': <input type="text" name="ingredient_name"><br>' +
        'Unit: <select name="unit" onchange="toggleLbsOzFields(this)">' +
        '<option value="g">g</option><option value="kg">kg</option>' +
        '<option value="ml">ml</option><option value="L">L</option>' +
        '<option value="oz">oz</option><option value="lbs">lbs</option>' +
        '<option value="lbs_oz">Lbs &amp; Oz</option></select><br>' +
        '<div class="lbs-oz-fields" style="display:none;">Lbs: <input type="text" name="quantity_lbs"> Oz: <input type="text" name="quantity_oz"></div>' +
        '<div class="plain-quantity">Quantity: <input type="text" name="quantity"></div>';
    container.appendChild(div);
}
</script>
`

// AddRecipeForm はレシピ追加フォームを生成します。
func AddRecipeForm() string {
	var sb strings.Builder
	sb.WriteString("<h1>Add Recipe</h1>\n")
	sb.WriteString(`<form method="post" id="recipeForm">` + "\n")
	sb.WriteString(`Drink Name: <input type="text" name="drink_name"><br>` + "\n")
	sb.WriteString(`<div id="ingredientContainer">` + "\n")
	sb.WriteString(ingredientFieldSet(1, "", "", units.Gram, "", ""))
	sb.WriteString("</div>\n")
	sb.WriteString(`<button type="button" onclick="addIngredient()">Add Ingredient</button><br>` + "\n")
	sb.WriteString(`<input type="submit" value="Add Recipe">` + "\n")
	sb.WriteString("</form>\n")
	sb.WriteString(`<a href="/view_recipes">Back to Recipes</a>` + "\n")
	sb.WriteString(LbsOzToggleScript)
	sb.WriteString(addIngredientScript)
	return Page("Add Recipe", sb.String())
}

// EditRecipeForm はレシピ編集フォームを生成します。
func EditRecipeForm(recipe *model.Recipe, ingredients []model.Ingredient) string {
	var sb strings.Builder
	sb.WriteString("<h1>Edit Recipe</h1>\n")
	sb.WriteString(`<form method="post" id="recipeForm">` + "\n")
	sb.WriteString(fmt.Sprintf(`Drink Name: <input type="text" name="drink_name" value="%s"><br>`, esc(recipe.DrinkName)))
	sb.WriteString("\n")
	sb.WriteString(`<div id="ingredientContainer">` + "\n")
	for i, ing := range ingredients {
		quantity := ing.Quantity.String()
		lbsStr, ozStr := "", ""
		if ing.Unit == units.PoundOunce {
			lbs, oz := units.SplitLbsOz(ing.Quantity)
			lbsStr, ozStr = lbs.String(), oz.String()
		}
		sb.WriteString(ingredientFieldSet(i+1, ing.IngredientName, quantity, ing.Unit, lbsStr, ozStr))
	}
	sb.WriteString("</div>\n")
	sb.WriteString(`<button type="button" onclick="addIngredient()">Add Ingredient</button><br>` + "\n")
	sb.WriteString(`<input type="submit" value="Update Recipe">` + "\n")
	sb.WriteString("</form>\n")
	sb.WriteString(`<a href="/view_recipes">Back to Recipes</a>` + "\n")
	sb.WriteString(LbsOzToggleScript)
	sb.WriteString(addIngredientScript)
	return Page("Edit Recipe", sb.String())
}

// RecipeList はドリンクごとにまとめたレシピ一覧です。JOIN 行は
// drink_name, recipe_id 順で並んでいる前提です。
func RecipeList(rows []model.RecipeIngredientRow) string {
	var sb strings.Builder
	sb.WriteString("<h1>Recipe List</h1>\n")

	currentRecipeID := -1
	for _, row := range rows {
		if row.RecipeID != currentRecipeID {
			currentRecipeID = row.RecipeID
			sb.WriteString(fmt.Sprintf("<h3>%s</h3>\n", esc(row.DrinkName)))
			sb.WriteString(fmt.Sprintf(`<a href="/edit_recipe/%d">Edit</a>`, row.RecipeID))
			sb.WriteString(fmt.Sprintf(
				` <form action="/delete_recipe/%d" method="post" style="display:inline;"><button type="submit">Delete</button></form>`,
				row.RecipeID))
			sb.WriteString(fmt.Sprintf(
				` <form action="/produce/%d" method="post" style="display:inline;"><button type="submit">Quick Produce</button></form>`,
				row.RecipeID))
			sb.WriteString(fmt.Sprintf(` <a href="/manufacture/%d">Manufacture</a><br>`, row.RecipeID))
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("<p>%s - %s %s</p>\n",
			esc(row.IngredientName), units.Format(row.Quantity), esc(row.Unit)))
	}
	if len(rows) == 0 {
		sb.WriteString("<p>No recipes yet.</p>\n")
	}

	sb.WriteString(`<a href="/add_recipe">Add New Recipe</a><br>` + "\n")
	sb.WriteString(`<a href="/">Back to Home</a>` + "\n")
	return Page("Recipe List", sb.String())
}
