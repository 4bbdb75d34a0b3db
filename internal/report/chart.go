package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/yarthi-tools/gradebook/internal/store"
)

const (
	chartWidth  = "1200px"
	chartHeight = "420px"

	// marksAxisMax leaves headroom above a perfect score so the top bar
	// does not touch the plot edge.
	marksAxisMax = 110

	xAxisRotate = 30

	lineWidth = 2
)

// WritePage renders the bar and line charts for the ranked rows into a
// standalone HTML file. The rows are the same snapshot the CSV export
// consumes, so the two outputs can never disagree.
func WritePage(path, title string, theme Theme, rows []store.RankedRow, stats store.Statistics) error {
	palette := GetPalette(theme)

	page := components.NewPage()
	page.PageTitle = title
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(
		buildBarChart(rows, stats, palette),
		buildLineChart(rows, palette),
	)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	renderErr := page.Render(file)

	closeErr := file.Close()

	if renderErr != nil {
		return fmt.Errorf("render report: %w", renderErr)
	}

	if closeErr != nil {
		return fmt.Errorf("close report file: %w", closeErr)
	}

	return nil
}

// buildBarChart plots one bar per student in rank order, labeled by roll and
// name. The statistics line rides along as the chart subtitle.
func buildBarChart(rows []store.RankedRow, stats store.Statistics, palette Palette) *charts.Bar {
	subtitle := fmt.Sprintf(
		"Students: %d | Highest: %s | Lowest: %s | Average: %.2f",
		stats.Count, formatMarks(stats.Max), formatMarks(stats.Min), stats.Average,
	)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           chartWidth,
			Height:          chartHeight,
			BackgroundColor: palette.Background,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:         "Performance Overview",
			Subtitle:      subtitle,
			Left:          "center",
			TitleStyle:    &opts.TextStyle{Color: palette.Text},
			SubtitleStyle: &opts.TextStyle{Color: palette.Text},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Color: palette.Text, Rotate: xAxisRotate},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Max:       marksAxisMax,
			AxisLabel: &opts.AxisLabel{Color: palette.Text},
		}),
	)

	labels := make([]string, len(rows))
	data := make([]opts.BarData, len(rows))

	for i, row := range rows {
		labels[i] = fmt.Sprintf("%s %s", row.Roll, row.Name)
		data[i] = opts.BarData{Value: row.Marks}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("Marks", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: palette.Bar}),
	)

	return bar
}

// buildLineChart plots the marks trend across rank order.
func buildLineChart(rows []store.RankedRow, palette Palette) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           chartWidth,
			Height:          chartHeight,
			BackgroundColor: palette.Background,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      "Marks Trend",
			Left:       "center",
			TitleStyle: &opts.TextStyle{Color: palette.Text},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Rank",
			AxisLabel: &opts.AxisLabel{Color: palette.Text},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Max:       marksAxisMax,
			AxisLabel: &opts.AxisLabel{Color: palette.Text},
		}),
	)

	labels := make([]string, len(rows))
	data := make([]opts.LineData, len(rows))

	for i, row := range rows {
		labels[i] = strconv.Itoa(row.Rank)
		data[i] = opts.LineData{Value: row.Marks}
	}

	line.SetXAxis(labels)
	line.AddSeries("Marks", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: palette.Line}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: palette.Line, Width: lineWidth}),
	)

	return line
}
