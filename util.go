package smoother

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	// GraphDir is created under the renderer root to hold every chart
	GraphDir = "forecast_graphs"

	chartCaption = "Total monthly sales across stores"
	xAxisName    = "MONTH"
	yAxisName    = "SALES"

	seasonLen = 12
)

var (
	seasonColors = []string{"orange", "green", "magenta", "blue", "purple", "red", "red", "red"}
	plainColors  = []string{"red"}
)

func IndentExpand(indent string, growth int) string {
	indentByte := []byte(indent)
	out := make([]byte, 0, len(indent)*growth)
	for i := 0; i < growth; i++ {
		out = append(out, indentByte...)
	}
	return string(out)
}

// Renderer persists a chart of a finished sequence. dir is an optional sub-directory and name the
// file base name.
type Renderer interface {
	Render(values []float64, seasonal bool, dir, name string) error
}

// NopRenderer discards every chart
type NopRenderer struct{}

func (NopRenderer) Render([]float64, bool, string, string) error {
	return nil
}

// EChartsRenderer writes each chart as an Apache Echarts html page under Root/forecast_graphs
type EChartsRenderer struct {
	Root string
}

func NewEChartsRenderer(root string) *EChartsRenderer {
	return &EChartsRenderer{Root: root}
}

// Path returns the file a chart is written to
func (r *EChartsRenderer) Path(dir, name string) string {
	return filepath.Join(r.Root, GraphDir, dir, name+".html")
}

func (r *EChartsRenderer) Render(values []float64, seasonal bool, dir, name string) error {
	path := r.Path(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("unable to create graph directory, %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := BarSeasons(chartCaption, values, seasonal).Render(file); err != nil {
		return fmt.Errorf("unable to render %s, %w", name, err)
	}
	return nil
}

// BarSeasons generates an echart bar chart with one bar per month. Every season of 12 bars shares
// a color which cycles through a palette when seasonal is set and is red otherwise.
func BarSeasons(title string, values []float64, seasonal bool) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: xAxisName}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName}),
	)

	colors := plainColors
	if seasonal {
		colors = seasonColors
	}

	months := make([]int, 0, len(values))
	barData := make([]opts.BarData, 0, len(values))
	for i, v := range values {
		color := colors[(i/seasonLen)%len(colors)]
		months = append(months, i)
		barData = append(barData, opts.BarData{
			Value:     v,
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}

	bar.SetXAxis(months).AddSeries(yAxisName, barData)
	return bar
}
