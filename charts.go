package main

import (
	"net/http"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"pitch-board/stats"
)

func leagueDotStyle(league string, dotWidth float64) chart.Style {
	hex := strings.TrimPrefix(stats.LeagueColors[league], "#")
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    dotWidth,
		DotColor:    drawing.ColorFromHex(hex),
	}
}

// Dot widths for the small/medium/large size buckets. A ContinuousSeries
// has one style for all its points, so per-point sizing is approximated by
// splitting each league into one sub-series per bucket.
var dotWidths = []float64{4, 7, 10}

// dotWidthFor buckets a point's size against the chart-wide size range.
// A flat range puts everything in the middle bucket.
func dotWidthFor(size, min, max float64) float64 {
	if max <= min {
		return dotWidths[1]
	}
	bucket := int((size - min) / (max - min) * float64(len(dotWidths)))
	if bucket >= len(dotWidths) {
		bucket = len(dotWidths) - 1
	}
	return dotWidths[bucket]
}

// scatterSeries groups the points by league so each league keeps its brand
// color, then by size bucket so bigger values draw bigger dots. League
// display order is preserved for a stable legend.
func scatterSeries(points []stats.ScatterPoint) []chart.Series {
	minSize, maxSize := points[0].Size, points[0].Size
	for _, p := range points {
		if p.Size < minSize {
			minSize = p.Size
		}
		if p.Size > maxSize {
			maxSize = p.Size
		}
	}

	type bucketKey struct {
		league string
		width  float64
	}
	byBucket := make(map[bucketKey][]stats.ScatterPoint)
	for _, p := range points {
		k := bucketKey{p.League, dotWidthFor(p.Size, minSize, maxSize)}
		byBucket[k] = append(byBucket[k], p)
	}

	var series []chart.Series
	for _, league := range stats.Leagues {
		named := false
		for _, width := range dotWidths {
			pts := byBucket[bucketKey{league, width}]
			if len(pts) == 0 {
				continue
			}
			xs := make([]float64, len(pts))
			ys := make([]float64, len(pts))
			for j, p := range pts {
				xs[j] = p.X
				ys[j] = p.Y
			}
			// One legend entry per league; further buckets stay unnamed
			// and the legend skips them.
			name := ""
			if !named {
				name = league
				named = true
			}
			series = append(series, chart.ContinuousSeries{
				Name:    name,
				Style:   leagueDotStyle(league, width),
				XValues: xs,
				YValues: ys,
			})
		}
	}
	return series
}

func renderScatter(w http.ResponseWriter, points []stats.ScatterPoint, xName, yName string, diagonal bool) {
	if len(points) == 0 {
		http.Error(w, "no data for this selection", http.StatusNotFound)
		return
	}

	series := scatterSeries(points)

	if diagonal {
		// y=x reference: teams above the line are beating their underlying
		// numbers.
		min, max := points[0].X, points[0].X
		for _, p := range points {
			if p.X < min {
				min = p.X
			}
			if p.X > max {
				max = p.X
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name: "y=x",
			Style: chart.Style{
				StrokeColor:     chart.ColorAlternateGray,
				StrokeDashArray: []float64{5.0, 5.0},
			},
			XValues: []float64{min, max},
			YValues: []float64{min, max},
		})
	}

	ch := chart.Chart{
		Width:      640,
		Height:     420,
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: xName},
		YAxis:      chart.YAxis{Name: yName},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	w.Header().Set("Content-Type", "image/png")
	if err := ch.Render(chart.PNG, w); err != nil {
		http.Error(w, "chart render failed", http.StatusInternalServerError)
	}
}

func chartSubset(w http.ResponseWriter, r *http.Request) (stats.Subset, bool) {
	sub, err := dataset.Filter(r.URL.Query().Get("league"), "")
	if err != nil {
		writeError(w, err)
		return stats.Subset{}, false
	}
	return sub, true
}

func xPointsChartHandler(w http.ResponseWriter, r *http.Request) {
	sub, ok := chartSubset(w, r)
	if !ok {
		return
	}
	renderScatter(w, stats.XPointsScatter(sub), "Expected Points", "Points", true)
}

func attendanceChartHandler(w http.ResponseWriter, r *http.Request) {
	sub, ok := chartSubset(w, r)
	if !ok {
		return
	}
	renderScatter(w, stats.AttendanceScatter(sub), "Average Attendance", "Points", false)
}
