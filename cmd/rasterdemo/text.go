package main

import (
	"image"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/raster/draw"
	"github.com/BeatGlow/raster/font"
	"github.com/BeatGlow/raster/pixel"
)

var textFlags struct {
	scale      int
	margin     int
	color      string
	background string
	exactCase  bool
}

func init() {
	flags := textCmd.Flags()
	flags.IntVarP(&textFlags.scale, `glyph-scale`, `g`, 2, `glyph scale, every font pixel becomes a scale×scale block`)
	flags.IntVar(&textFlags.margin, `margin`, 4, `margin around the text in pixels`)
	flags.StringVar(&textFlags.color, `color`, `#ffffff`, `text color`)
	flags.StringVar(&textFlags.background, `background`, `#000000`, `background color`)
	flags.BoolVar(&textFlags.exactCase, `exact-case`, false, `do not fall back to upper case glyphs`)
	rootCmd.AddCommand(textCmd)
}

var textCmd = &cobra.Command{
	Use:   `text line [line ...]`,
	Short: `render text with the 5x7 bitmap font`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return textFunc(args) })
	},
}

func textFunc(lines []string) error {
	fg, err := parseColor(textFlags.color)
	if err != nil {
		return err
	}
	bg, err := parseColor(textFlags.background)
	if err != nil {
		return err
	}

	b := renderText(lines, max(textFlags.scale, 1), max(textFlags.margin, 0), fg, bg, !textFlags.exactCase)
	return out.write(b)
}

// renderText lays out lines top to bottom in a buffer just large enough to
// hold them.
func renderText(lines []string, scale, margin int, fg, bg pixel.Pixel, fold bool) *pixel.Buffer {
	var (
		src        = font.Font5x7
		lineHeight = (font.Height + font.Spacing) * scale
		size       image.Point
	)
	if fold {
		src = font.Folded(src)
	}
	for _, line := range lines {
		size.X = max(size.X, draw.TextSize(line, scale).X)
	}
	size.Y = len(lines)*lineHeight - font.Spacing*scale

	b := pixel.NewBufferFill(size.X+2*margin, size.Y+2*margin, bg)
	for i, line := range lines {
		draw.Text(b, draw.Style{Stroke: fg}, src, image.Pt(margin, margin+i*lineHeight), line, scale)
	}
	return b
}
