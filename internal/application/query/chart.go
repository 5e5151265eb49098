package query

import "github.com/jhoicas/stockpilot-api/internal/application/dto"

// Constructores del descriptor abstracto de gráfico. Las series Labels/Values
// son paralelas; el render final es responsabilidad del frontend.

func newBarChart(title, xLabel, yLabel string, labels []string, values []float64) *dto.ChartDTO {
	return &dto.ChartDTO{
		Kind:   "bar",
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Labels: labels,
		Values: values,
	}
}

func newPieChart(title string, labels []string, values []float64) *dto.ChartDTO {
	return &dto.ChartDTO{
		Kind:   "pie",
		Title:  title,
		Labels: labels,
		Values: values,
	}
}
