package main

import (
	"errors"
	"math"
	"strconv"
	"strings"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/BeatGlow/raster/chart"
	"github.com/BeatGlow/raster/draw"
	"github.com/BeatGlow/raster/pixel"
)

var chartFlags struct {
	kind       string
	xMin, xMax float64
	yMin, yMax float64
	width      int
	height     int
	dataWidth  int
	dataColor  string
	axisColor  string
	background string
	sine       int
}

func init() {
	flags := chartCmd.Flags()
	flags.StringVarP(&chartFlags.kind, `kind`, `k`, chart.Lines.String(), `series kind (lines or dots)`)
	flags.Float64Var(&chartFlags.xMin, `xmin`, -10, `lower bound of the x range`)
	flags.Float64Var(&chartFlags.xMax, `xmax`, 10, `upper bound of the x range`)
	flags.Float64Var(&chartFlags.yMin, `ymin`, -5, `lower bound of the y range`)
	flags.Float64Var(&chartFlags.yMax, `ymax`, 5, `upper bound of the y range`)
	flags.IntVar(&chartFlags.width, `width`, chart.DefaultWidth, `chart width in pixels`)
	flags.IntVar(&chartFlags.height, `height`, chart.DefaultHeight, `chart height in pixels`)
	flags.IntVar(&chartFlags.dataWidth, `data-width`, 1, `stroke width of the series`)
	flags.StringVar(&chartFlags.dataColor, `data-color`, `#ffffff`, `series color`)
	flags.StringVar(&chartFlags.axisColor, `axis-color`, `#444444`, `axis color`)
	flags.StringVar(&chartFlags.background, `background`, `#000000`, `background color`)
	flags.IntVar(&chartFlags.sine, `sine`, 0, `plot a sine wave with this many samples instead of the arguments`)
	rootCmd.AddCommand(chartCmd)
}

var chartCmd = &cobra.Command{
	Use:   `chart [x,y ...]`,
	Short: `plot a data series`,
	Long: `Plot a data series given as x,y arguments.

The axes are drawn wherever x = 0 or y = 0 lies inside the ranges, and the
series is drawn over them.`,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return chartFunc(args) })
	},
}

var errPoint = errors.New(`point is not "<x>,<y>"`)

func chartFunc(args []string) error {
	kind, err := chart.ParseKind(chartFlags.kind)
	if err != nil {
		return err
	}

	var colors [3]pixel.Pixel
	for i, s := range []string{chartFlags.dataColor, chartFlags.axisColor, chartFlags.background} {
		if colors[i], err = parseColor(s); err != nil {
			return err
		}
	}

	var data []chart.Point
	if chartFlags.sine > 0 {
		data = sine(chartFlags.sine, chart.Range{Min: chartFlags.xMin, Max: chartFlags.xMax}, chartFlags.yMax)
	} else {
		if data, err = parsePoints(args); err != nil {
			return err
		}
	}

	c, err := chart.New(chart.Config{
		Width:      chartFlags.width,
		Height:     chartFlags.height,
		X:          chart.Range{Min: chartFlags.xMin, Max: chartFlags.xMax},
		Y:          chart.Range{Min: chartFlags.yMin, Max: chartFlags.yMax},
		Background: colors[2],
		Axis:       &draw.Style{Stroke: colors[1], Width: 1},
		Data:       &draw.Style{Stroke: colors[0], Width: chartFlags.dataWidth},
	})
	if err != nil {
		return err
	}
	c.Render(kind, data)
	return out.write(c.Buffer())
}

func parsePoints(args []string) ([]chart.Point, error) {
	data := make([]chart.Point, 0, len(args))
	for _, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			return nil, err
		}
		data = append(data, p)
	}
	return data, nil
}

func parsePoint(s string) (chart.Point, error) {
	x, y, ok := strings.Cut(s, `,`)
	if !ok {
		return chart.Point{}, errorsGo.Errorf("%w: %q", errPoint, s)
	}
	var (
		p   chart.Point
		err error
	)
	if p.X, err = strconv.ParseFloat(strings.TrimSpace(x), 64); err != nil {
		return chart.Point{}, errorsGo.Errorf("%w: %q: %w", errPoint, s, err)
	}
	if p.Y, err = strconv.ParseFloat(strings.TrimSpace(y), 64); err != nil {
		return chart.Point{}, errorsGo.Errorf("%w: %q: %w", errPoint, s, err)
	}
	return p, nil
}

// sine samples amplitude*sin(x) over r.
func sine(samples int, r chart.Range, amplitude float64) []chart.Point {
	data := make([]chart.Point, samples)
	for i := range data {
		x := r.Min + r.Span()*float64(i)/float64(max(samples-1, 1))
		data[i] = chart.Point{X: x, Y: amplitude * math.Sin(x)}
	}
	return data
}
