// render は各画面のHTMLを組み立てます。テンプレートエンジンは使わず、
// strings.Builder で直接生成します。
package render

import (
	"fmt"
	"html"
	"strings"

	"shroomworks/units"
)

// Page は共通の骨組みに本文を流し込みます。
func Page(title, body string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString(`<meta charset="utf-8">` + "\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(title)))
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

// UnitOptions は単位セレクトの option 群を生成します。
func UnitOptions(selected string) string {
	var sb strings.Builder
	for _, u := range units.All() {
		sel := ""
		if u == selected {
			sel = " selected"
		}
		label := u
		if u == units.PoundOunce {
			label = "Lbs &amp; Oz"
		}
		sb.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`, u, sel, label))
	}
	return sb.String()
}

// LbsOzToggleScript は Unit 選択に応じて Lbs/Oz 入力欄を切り替える
// 共通スクリプトです。
const LbsOzToggleScript = `
<script>
function toggleLbsOzFields(sel) {
    const row = sel.closest('.quantity-row') || document;
    const lbsOz = row.querySelector('.lbs-oz-fields');
    const plain = row.querySelector('.plain-quantity');
    if (sel.value === 'lbs_oz') {
        lbsOz.style.display = 'block';
        if (plain) plain.style.display = 'none';
    } else {
        lbsOz.style.display = 'none';
        if (plain) plain.style.display = 'block';
    }
}
window.addEventListener('load', function () {
    document.querySelectorAll('select[name="unit"]').forEach(function (sel) {
        toggleLbsOzFields(sel);
    });
});
</script>
`

func esc(s string) string {
	return html.EscapeString(s)
}
