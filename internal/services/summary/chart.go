package summary

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// RenderAllocationChart renders the asset-type allocation as a PNG bar
// chart. Returns raw PNG bytes.
func (s *Service) RenderAllocationChart(analysis *models.AnalysisResult) ([]byte, error) {
	bars := []chart.Value{
		{
			Label: "Stocks",
			Value: analysis.EquityPercentage,
			Style: chart.Style{FillColor: drawing.ColorFromHex("2563eb"), StrokeColor: drawing.ColorFromHex("2563eb")}, // blue-600
		},
		{
			Label: "Bonds",
			Value: analysis.FixedIncomePercentage,
			Style: chart.Style{FillColor: drawing.ColorFromHex("16a34a"), StrokeColor: drawing.ColorFromHex("16a34a")}, // green-600
		},
		{
			Label: "Cash",
			Value: analysis.CashPercentage,
			Style: chart.Style{FillColor: drawing.ColorFromHex("9ca3af"), StrokeColor: drawing.ColorFromHex("9ca3af")}, // gray-400
		},
	}

	graph := chart.BarChart{
		Title:    "Asset Allocation",
		Width:    600,
		Height:   400,
		BarWidth: 120,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f%%", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render allocation chart: %w", err)
	}

	return buf.Bytes(), nil
}
