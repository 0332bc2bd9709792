package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tilegraph/npuzzle"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#1D9EA3"))
	styleValue = lipgloss.NewStyle().Bold(true)
	styleBoard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#16858E")).
			Padding(0, 1)
)

// renderPretty styles the start board and the report block for terminals.
// The plain formatReport form remains the file/pipe output.
func renderPretty(board *npuzzle.Board, result npuzzle.Result, peakRSS int64) string {
	labels := make([]string, len(result.Path))
	for i, move := range result.Path {
		labels[i] = move.String()
	}

	rows := []struct {
		label string
		value string
	}{
		{"path_to_goal", "[" + strings.Join(labels, ", ") + "]"},
		{"cost_of_path", fmt.Sprintf("%d", result.CostOfPath)},
		{"nodes_expanded", fmt.Sprintf("%d", result.NodesExpanded)},
		{"search_depth", fmt.Sprintf("%d", result.SearchDepth)},
		{"max_search_depth", fmt.Sprintf("%d", result.MaxSearchDepth)},
		{"running_time", fmt.Sprintf("%.8f", result.RunningTime.Seconds())},
		{"max_ram_usage", fmt.Sprintf("%d", peakRSS)},
	}

	var builder strings.Builder
	builder.WriteString(styleTitle.Render("npuzzle solved"))
	builder.WriteByte('\n')
	builder.WriteString(styleBoard.Render(strings.TrimRight(board.String(), "\n")))
	builder.WriteByte('\n')
	for _, row := range rows {
		builder.WriteString(styleLabel.Render(row.label+":") + " " + styleValue.Render(row.value))
		builder.WriteByte('\n')
	}
	return builder.String()
}
