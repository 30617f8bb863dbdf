package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"SIS-Accumulator/config"
	"SIS-Accumulator/field"
	"SIS-Accumulator/params"
)

// witnessHistogram counts how many coordinates of w take each value.
func witnessHistogram[E any](f field.Field[E], w []E) ([]int, error) {
	var counts []int
	for i, x := range w {
		v, ok := field.Uint64(f, x)
		if !ok || v > 1<<20 {
			return nil, fmt.Errorf("witness coordinate %d out of histogram range", i)
		}
		for int(v) >= len(counts) {
			counts = append(counts, 0)
		}
		counts[v]++
	}
	return counts, nil
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newWitnessChart[E any](p *params.Set[E], histograms [][]int) *charts.Bar {
	width := 0
	for _, h := range histograms {
		if len(h) > width {
			width = len(h)
		}
	}
	xLabels := make([]string, width)
	for i := range xLabels {
		xLabels[i] = strconv.Itoa(i)
	}

	bar := charts.NewBar()
	title := "witness coordinates"
	subtitle := fmt.Sprintf("m=%d, n=%d, capacity=%d, field=%s", p.M, p.N, p.Capacity, p.Field().Name())
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels)
	for i, h := range histograms {
		padded := make([]int, width)
		copy(padded, h)
		bar.AddSeries(fmt.Sprintf("element %d", i), toBarItems(padded))
	}
	return bar
}

func runReport[E any](p *params.Set[E], demo config.DemoConfig, report config.ReportConfig) error {
	acc, values, err := populate(p, demo)
	if err != nil {
		return err
	}
	f := p.Field()
	histograms := make([][]int, 0, len(values))
	for i, v := range values {
		w := acc.CalculateWitness(v)
		if !acc.CheckInclusion(v, w) {
			return fmt.Errorf("member %d rejected", i)
		}
		h, err := witnessHistogram(f, w)
		if err != nil {
			return err
		}
		histograms = append(histograms, h)
	}

	if err := os.MkdirAll(report.OutDir, 0o755); err != nil {
		return err
	}
	page := components.NewPage()
	page.AddCharts(newWitnessChart(p, histograms))

	ts := time.Now().Format("20060102_150405")
	htmlPath := filepath.Join(report.OutDir, fmt.Sprintf("witness_histogram_%s.html", ts))
	out, err := os.Create(htmlPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := page.Render(out); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	fmt.Println("Histogram page:", htmlPath)
	return nil
}
