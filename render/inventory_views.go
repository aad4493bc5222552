package render

import (
	"fmt"
	"strings"

	"shroomworks/model"
	"shroomworks/units"
)

// HomePage はホーム画面 (在庫一覧 + 検索 + 直近履歴) を生成します。
func HomePage(items []model.InventoryLot, searchTerm string, history []model.HistoryEntry) string {
	var sb strings.Builder
	sb.WriteString("<h1>Shroomworks Inventory System</h1>\n")

	sb.WriteString(`<form method="post" action="/">` + "\n")
	sb.WriteString(fmt.Sprintf(`Search: <input type="text" name="search" value="%s">`, esc(searchTerm)))
	sb.WriteString(`<input type="submit" value="Search">` + "\n</form>\n")

	if len(items) == 0 {
		sb.WriteString("<p>No inventory found.</p>\n")
	}
	for _, item := range items {
		sb.WriteString(fmt.Sprintf(
			`<p>%s (Lot: %s), Quantity: %s %s, Received Date: %s <a href="/edit/%d">Edit</a></p>`,
			esc(item.ProductName), esc(item.LotNumber),
			units.Format(item.Quantity), esc(item.Unit),
			esc(item.ReceivedDate), item.ID))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(
			`<form action="/delete/%d" method="post" style="display:inline;"><button type="submit">Delete</button></form>`,
			item.ID))
		sb.WriteString("\n")
	}

	sb.WriteString(`<a href="/add">Add Inventory</a><br>` + "\n")
	sb.WriteString(`<a href="/inventory_chart">View Inventory Chart</a><br>` + "\n")
	sb.WriteString(`<a href="/view_recipes">Manage Recipes</a><br>` + "\n")

	sb.WriteString("<h2>History</h2>\n")
	for _, entry := range history {
		sb.WriteString(fmt.Sprintf("<p>%s: %s at %s</p>\n",
			esc(entry.ActionType), esc(entry.Details), esc(entry.Timestamp)))
	}
	sb.WriteString(`<a href="/more_history">More History</a>` + "\n")

	sb.WriteString("<h2>Export Data</h2>\n")
	sb.WriteString(`<a href="/export_inventory"><button>Export Inventory to CSV</button></a><br>` + "\n")
	sb.WriteString(`<a href="/export_recipes"><button>Export Recipes to CSV</button></a><br>` + "\n")

	sb.WriteString("<h2>Import Data</h2>\n")
	sb.WriteString(`<form action="/import_inventory" method="post" enctype="multipart/form-data">` + "\n")
	sb.WriteString(`<input type="file" name="file" accept=".csv"> <input type="submit" value="Import Inventory CSV">` + "\n")
	sb.WriteString("</form>\n")

	return Page("Shroomworks Inventory System", sb.String())
}

// AddInventoryForm は在庫追加フォームを生成します。
func AddInventoryForm() string {
	var sb strings.Builder
	sb.WriteString("<h1>Add Inventory</h1>\n")
	sb.WriteString(`<form method="post" enctype="multipart/form-data">` + "\n")
	sb.WriteString(`Product Name: <input type="text" name="product_name"><br>` + "\n")
	sb.WriteString(`Lot Number: <input type="text" name="lot_number"><br>` + "\n")
	sb.WriteString(`<div class="quantity-row">` + "\n")
	sb.WriteString(fmt.Sprintf(`Unit: <select name="unit" onchange="toggleLbsOzFields(this)">%s</select><br>`, UnitOptions(units.Gram)))
	sb.WriteString("\n")
	sb.WriteString(`<div class="lbs-oz-fields" style="display:none;">Quantity: <input type="text" name="quantity_lbs"> lbs <input type="text" name="quantity_oz"> oz</div>` + "\n")
	sb.WriteString(`<div class="plain-quantity">Quantity: <input type="text" name="quantity"></div>` + "\n")
	sb.WriteString("</div>\n")
	sb.WriteString(`Received Date: <input type="text" name="received_date"><br>` + "\n")
	sb.WriteString(`Receipt: <input type="file" name="file"><br>` + "\n")
	sb.WriteString(`<input type="submit" value="Add Inventory">` + "\n")
	sb.WriteString("</form>\n")
	sb.WriteString(`<a href="/">Back to Home</a>` + "\n")
	sb.WriteString(LbsOzToggleScript)
	return Page("Add Inventory", sb.String())
}

// EditInventoryForm は在庫編集フォームを生成します。lbs_oz の場合は
// 保存値 (総オンス) を lbs / oz に分解した値を初期表示します。
func EditInventoryForm(item *model.InventoryLot) string {
	lbs, oz := units.SplitLbsOz(item.Quantity)

	fileLink := ""
	if item.ReceiptFile.Valid && item.ReceiptFile.String != "" {
		name := item.ReceiptFile.String
		if isImage(name) {
			fileLink = fmt.Sprintf(`<img src="/uploads/%s" alt="Attached image" style="max-width:200px;"><br>`, esc(name))
		} else {
			fileLink = fmt.Sprintf(`<a href="/uploads/%s" target="_blank">Open existing file</a><br>`, esc(name))
		}
	}

	var sb strings.Builder
	sb.WriteString("<h1>Edit Inventory</h1>\n")
	sb.WriteString(`<form method="post" enctype="multipart/form-data">` + "\n")
	sb.WriteString(fmt.Sprintf(`Product Name: <input type="text" name="product_name" value="%s"><br>`, esc(item.ProductName)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`Lot Number: <input type="text" name="lot_number" value="%s"><br>`, esc(item.LotNumber)))
	sb.WriteString("\n")
	sb.WriteString(`<div class="quantity-row">` + "\n")
	sb.WriteString(fmt.Sprintf(`Unit: <select name="unit" onchange="toggleLbsOzFields(this)">%s</select><br>`, UnitOptions(item.Unit)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(
		`<div class="lbs-oz-fields" style="display:none;">Lbs: <input type="text" name="quantity_lbs" value="%s"> Oz: <input type="text" name="quantity_oz" value="%s"><br></div>`,
		lbs.String(), oz.String()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<div class="plain-quantity">Quantity: <input type="text" name="quantity" value="%s"></div>`, item.Quantity.String()))
	sb.WriteString("\n</div>\n")
	sb.WriteString(fmt.Sprintf(`Received Date: <input type="text" name="received_date" value="%s"><br>`, esc(item.ReceivedDate)))
	sb.WriteString("\n")
	sb.WriteString(fileLink + "\n")
	sb.WriteString(`Receipt: <input type="file" name="file"><br>` + "\n")
	sb.WriteString(`<input type="submit" value="Update">` + "\n")
	sb.WriteString("</form>\n")
	sb.WriteString(`<a href="/">Back to Home</a>` + "\n")
	sb.WriteString(LbsOzToggleScript)
	return Page("Edit Inventory", sb.String())
}

// HistoryPage は全履歴の一覧です。
func HistoryPage(entries []model.HistoryEntry) string {
	var sb strings.Builder
	sb.WriteString("<h1>History</h1>\n")
	if len(entries) == 0 {
		sb.WriteString("<p>No history yet.</p>\n")
	}
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("<p>%s: %s at %s</p>\n",
			esc(entry.ActionType), esc(entry.Details), esc(entry.Timestamp)))
	}
	sb.WriteString(`<a href="/">Back to Home</a>` + "\n")
	return Page("History", sb.String())
}

func isImage(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg")
}
