package report

import (
	"fmt"
	"html"
	"strings"

	"shroomworks/model"
	"shroomworks/units"
)

const (
	chartWidth   = 900
	chartHeight  = 420
	chartPadding = 50
)

// renderBarChartSVG は (商品, 単位) ごとの在庫合計を棒グラフにします。
// バーの上に「数量 単位」のラベルを置きます。
func renderBarChartSVG(rows []model.StockSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		chartWidth, chartHeight, chartWidth, chartHeight))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, chartWidth, chartHeight))
	sb.WriteString("\n")

	if len(rows) == 0 {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle">No inventory</text>`,
			chartWidth/2, chartHeight/2))
		sb.WriteString("\n</svg>\n")
		return sb.String()
	}

	maxVal := 0.0
	for _, row := range rows {
		v, _ := row.Total.Float64()
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	plotWidth := float64(chartWidth - 2*chartPadding)
	plotHeight := float64(chartHeight - 2*chartPadding)
	slot := plotWidth / float64(len(rows))
	barWidth := slot * 0.6

	// X軸
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`,
		chartPadding, chartHeight-chartPadding, chartWidth-chartPadding, chartHeight-chartPadding))
	sb.WriteString("\n")

	for i, row := range rows {
		v, _ := row.Total.Float64()
		if v < 0 {
			v = 0
		}
		barHeight := v / maxVal * plotHeight
		x := float64(chartPadding) + slot*float64(i) + (slot-barWidth)/2
		y := float64(chartHeight-chartPadding) - barHeight

		sb.WriteString(fmt.Sprintf(
			`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="steelblue"/>`,
			x, y, barWidth, barHeight))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(
			`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="12">%s %s</text>`,
			x+barWidth/2, y-5, units.Format(row.Total), html.EscapeString(row.Unit)))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(
			`<text x="%.1f" y="%d" text-anchor="middle" font-size="12">%s</text>`,
			x+barWidth/2, chartHeight-chartPadding+16, html.EscapeString(row.ProductName)))
		sb.WriteString("\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// renderLineChartSVG は累計数量の折れ線グラフにします。
func renderLineChartSVG(points []model.SeriesPoint, baseUnit string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		chartWidth, chartHeight, chartWidth, chartHeight))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, chartWidth, chartHeight))
	sb.WriteString("\n")

	if len(points) == 0 {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle">No history</text>`,
			chartWidth/2, chartHeight/2))
		sb.WriteString("\n</svg>\n")
		return sb.String()
	}

	minVal, maxVal := 0.0, 0.0
	for _, p := range points {
		v, _ := p.Total.Float64()
		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	plotWidth := float64(chartWidth - 2*chartPadding)
	plotHeight := float64(chartHeight - 2*chartPadding)

	xAt := func(i int) float64 {
		if len(points) == 1 {
			return float64(chartPadding) + plotWidth/2
		}
		return float64(chartPadding) + plotWidth*float64(i)/float64(len(points)-1)
	}
	yAt := func(v float64) float64 {
		return float64(chartHeight-chartPadding) - (v-minVal)/(maxVal-minVal)*plotHeight
	}

	// 軸
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`,
		chartPadding, chartHeight-chartPadding, chartWidth-chartPadding, chartHeight-chartPadding))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`,
		chartPadding, chartPadding, chartPadding, chartHeight-chartPadding))
	sb.WriteString("\n")

	var path strings.Builder
	for i, p := range points {
		v, _ := p.Total.Float64()
		if i == 0 {
			path.WriteString(fmt.Sprintf("M %.1f %.1f", xAt(i), yAt(v)))
		} else {
			path.WriteString(fmt.Sprintf(" L %.1f %.1f", xAt(i), yAt(v)))
		}
	}
	sb.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="steelblue" stroke-width="2"/>`, path.String()))
	sb.WriteString("\n")

	for i, p := range points {
		v, _ := p.Total.Float64()
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="steelblue"/>`, xAt(i), yAt(v)))
		sb.WriteString("\n")
	}

	first := points[0].Timestamp
	last := points[len(points)-1].Timestamp
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="12">%s</text>`,
		chartPadding, chartHeight-chartPadding+16, html.EscapeString(first)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" font-size="12">%s</text>`,
		chartWidth-chartPadding, chartHeight-chartPadding+16, html.EscapeString(last)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="12">Total Quantity (%s)</text>`,
		chartPadding, chartPadding-10, html.EscapeString(baseUnit)))
	sb.WriteString("\n")

	sb.WriteString("</svg>\n")
	return sb.String()
}
