package main

import (
	"image"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/raster/draw"
	"github.com/BeatGlow/raster/pixel"
	"github.com/BeatGlow/raster/shape"
)

var shapesFlags struct {
	width  int
	stroke string
	fill   string
}

func init() {
	flags := shapesCmd.Flags()
	flags.IntVarP(&shapesFlags.width, `width`, `w`, 4, `stroke width`)
	flags.StringVar(&shapesFlags.stroke, `stroke`, `#ff8000`, `stroke color`)
	flags.StringVar(&shapesFlags.fill, `fill`, `#0080ff`, `fill color`)
	rootCmd.AddCommand(shapesCmd)
}

var shapesCmd = &cobra.Command{
	Use:   `shapes`,
	Short: `sample the stroke geometries`,
	Long: `Draw a circle, a filled rectangle and an outlined rectangle for every
stroke geometry, one geometry per row.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(shapesFunc)
	},
}

const shapesCell = 64

func shapesFunc() error {
	stroke, err := parseColor(shapesFlags.stroke)
	if err != nil {
		return err
	}
	fill, err := parseColor(shapesFlags.fill)
	if err != nil {
		return err
	}
	return out.write(renderShapes(shapesFlags.width, stroke, fill))
}

func renderShapes(width int, stroke, fill pixel.Pixel) *pixel.Buffer {
	var (
		geometries = []draw.Geometry{draw.Inner, draw.Outer, draw.Center}
		b          = pixel.NewBuffer(shapesCell*4, shapesCell*len(geometries))
		frame      = draw.Style{Stroke: 0x444444, Width: 1}
	)
	for row, g := range geometries {
		var (
			y     = row * shapesCell
			style = draw.Style{Stroke: stroke, Width: width, Geometry: g}.WithFill(fill)
			name  = strings.ToUpper(g.String())
			size  = draw.TextSize(name, 1).Add(image.Pt(4, 4))
		)

		label := pixel.NewBuffer(size.X, size.Y)
		draw.Text(label, draw.Style{Stroke: pixel.White}, nil, image.Pt(2, 2), name, 1)
		draw.Blit(b, frame, image.Pt(4, y+(shapesCell-size.Y)/2), label)

		outline := shape.NewRect(image.Pt(3*shapesCell+16, y+16), 32, 32, style)
		outline.StrokeOnly = true
		shape.Render(b,
			shape.NewCircle(image.Pt(shapesCell+shapesCell/2, y+shapesCell/2), 16, style),
			shape.NewRect(image.Pt(2*shapesCell+16, y+16), 32, 32, style),
			outline,
		)
	}
	return b
}
