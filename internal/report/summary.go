package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// RenderSummary renders a card listing every workout with distance and calories,
// followed by the totals.
func RenderSummary(msgs []InfoMessage) string {
	title := cardTitleStyle.Render("Workouts")

	if len(msgs) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No workouts"))
	}

	var totalDistance, totalCalories float64
	lines := make([]string, 0, len(msgs)+1)
	for _, m := range msgs {
		lines = append(lines, renderMetric(
			m.TrainingType,
			fmt.Sprintf("%.3f км  %.3f ккал", m.Distance, m.Calories),
		))
		totalDistance += m.Distance
		totalCalories += m.Calories
	}
	lines = append(lines, totalStyle.Render(
		fmt.Sprintf("Всего: %.3f км, %.3f ккал", totalDistance, totalCalories),
	))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// CaloriesChart plots calories per workout in input order.
// Returns "" when there are fewer than two workouts to plot.
func CaloriesChart(msgs []InfoMessage) string {
	if len(msgs) < 2 {
		return ""
	}

	data := make([]float64, len(msgs))
	for i, m := range msgs {
		data[i] = m.Calories
	}

	return asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(50),
		asciigraph.Precision(1),
		asciigraph.Caption("kcal per workout"),
	)
}
