package draw

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/raster/font"
	"github.com/BeatGlow/raster/pixel"
)

const (
	background  = pixel.Pixel(0x010203)
	strokeColor = pixel.Pixel(0xff8000)
	fillColor   = pixel.Pixel(0x0080ff)
)

func testBuffer(w, h int) *pixel.Buffer {
	return pixel.NewBufferFill(w, h, background)
}

func painted(b *pixel.Buffer) map[image.Point]pixel.Pixel {
	m := make(map[image.Point]pixel.Pixel)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if c := b.PixelAt(x, y); c != background {
				m[image.Pt(x, y)] = c
			}
		}
	}
	return m
}

func TestBand(t *testing.T) {
	tests := []struct {
		nominal, width int
		geometry       Geometry
		inner, outer   int
	}{
		{10, 2, Inner, 8, 10},
		{10, 2, Outer, 10, 12},
		{10, 2, Center, 9, 11},
		{10, 3, Center, 9, 11},
		{10, 0, Outer, 10, 10},
		{1, 4, Inner, 0, 1},
		{1, 5, Center, 0, 3},
		{0, 3, Outer, 0, 3},
		{5, -2, Outer, 5, 5},
		{-4, 2, Inner, 0, 0},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d/%d/%s", test.nominal, test.width, test.geometry), func(it *testing.T) {
			inner, outer := Band(test.nominal, test.width, test.geometry)
			assert.Equal(it, test.inner, inner, "inner")
			assert.Equal(it, test.outer, outer, "outer")
		})
	}
}

func TestCircle(t *testing.T) {
	center := image.Pt(20, 20)
	for _, geometry := range []Geometry{Inner, Outer, Center} {
		for _, width := range []int{0, 1, 2, 3, 7} {
			for _, radius := range []int{0, 1, 2, 5, 12} {
				for _, filled := range []bool{false, true} {
					name := fmt.Sprintf("%s/w%d/r%d/fill=%t", geometry, width, radius, filled)
					t.Run(name, func(it *testing.T) {
						style := Style{Stroke: strokeColor, Width: width, Geometry: geometry}
						if filled {
							style = style.WithFill(fillColor)
						}
						b := testBuffer(41, 41)
						Circle(b, style, center, radius)

						inner, outer := Band(radius, width, geometry)
						for y := 0; y < 41; y++ {
							for x := 0; x < 41; x++ {
								dx, dy := x-center.X, y-center.Y
								d := dx*dx + dy*dy
								want := background
								switch {
								case d > outer*outer:
								case d > inner*inner:
									want = strokeColor
								case filled:
									want = fillColor
								}
								if got := b.PixelAt(x, y); got != want {
									it.Fatalf("pixel (%d,%d) at d²=%d is %#06x, expected %#06x", x, y, d, got, want)
								}
							}
						}
					})
				}
			}
		}
	}
}

func TestCircleClipping(t *testing.T) {
	b := testBuffer(8, 8)
	style := Style{Stroke: strokeColor, Width: 2, Geometry: Outer}.WithFill(fillColor)

	assert.NotPanics(t, func() {
		Circle(b, style, image.Pt(0, 0), 3)
		Circle(b, style, image.Pt(-20, 4), 3)
		Circle(b, style, image.Pt(7, 100), 30)
	})
	assert.Equal(t, fillColor, b.PixelAt(0, 0))
	assert.Equal(t, strokeColor, b.PixelAt(4, 0))
}

func TestDisc(t *testing.T) {
	b := testBuffer(9, 9)
	Disc(b, image.Pt(4, 4), 1, strokeColor)
	assert.Equal(t, map[image.Point]pixel.Pixel{
		{4, 3}: strokeColor,
		{3, 4}: strokeColor,
		{4, 4}: strokeColor,
		{5, 4}: strokeColor,
		{4, 5}: strokeColor,
	}, painted(b))
}

func TestBresenham(t *testing.T) {
	tests := []struct {
		a, b image.Point
	}{
		{image.Pt(0, 0), image.Pt(0, 0)},
		{image.Pt(0, 0), image.Pt(10, 0)},
		{image.Pt(10, 0), image.Pt(0, 0)},
		{image.Pt(3, 9), image.Pt(3, -4)},
		{image.Pt(0, 0), image.Pt(7, 7)},
		{image.Pt(7, 0), image.Pt(0, 7)},
		{image.Pt(0, 0), image.Pt(10, 3)},
		{image.Pt(-5, 2), image.Pt(4, 17)},
		{image.Pt(12, 5), image.Pt(-3, 1)},
	}
	for _, test := range tests {
		t.Run(test.a.String()+"-"+test.b.String(), func(it *testing.T) {
			var path []image.Point
			bresenham(test.a.X, test.a.Y, test.b.X, test.b.Y, func(x, y int) {
				path = append(path, image.Pt(x, y))
			})

			require.NotEmpty(it, path)
			assert.Equal(it, test.a, path[0], "first point")
			assert.Equal(it, test.b, path[len(path)-1], "last point")

			d := test.b.Sub(test.a)
			assert.Len(it, path, max(abs(d.X), abs(d.Y))+1, "one pixel per major axis step")

			for i := 1; i < len(path); i++ {
				step := path[i].Sub(path[i-1])
				if abs(step.X) > 1 || abs(step.Y) > 1 || step.Eq(image.Point{}) {
					it.Fatalf("gap between %s and %s", path[i-1], path[i])
				}
			}
		})
	}
}

func TestLine(t *testing.T) {
	t.Run("degenerate", func(it *testing.T) {
		b := testBuffer(10, 10)
		p := image.Pt(4, 6)
		Line(b, Style{Stroke: strokeColor, Width: 1}, p, p)
		assert.Equal(it, map[image.Point]pixel.Pixel{p: strokeColor}, painted(b))
	})

	t.Run("degenerate-thick", func(it *testing.T) {
		b := testBuffer(10, 10)
		want := testBuffer(10, 10)
		p := image.Pt(4, 6)
		Line(b, Style{Stroke: strokeColor, Width: 4, Geometry: Outer}, p, p)
		Disc(want, p, 2, strokeColor)
		assert.Equal(it, painted(want), painted(b))
	})

	t.Run("zero-width", func(it *testing.T) {
		b := testBuffer(10, 10)
		Line(b, Style{Stroke: strokeColor}, image.Pt(1, 1), image.Pt(8, 1))
		assert.Len(it, painted(b), 8)
	})

	t.Run("end-points", func(it *testing.T) {
		for _, width := range []int{1, 2, 5} {
			b := testBuffer(20, 20)
			a, c := image.Pt(2, 17), image.Pt(15, 3)
			Line(b, Style{Stroke: strokeColor, Width: width}, a, c)
			assert.Equal(it, strokeColor, b.PixelAt(a.X, a.Y))
			assert.Equal(it, strokeColor, b.PixelAt(c.X, c.Y))
		}
	})

	t.Run("thick-stamps", func(it *testing.T) {
		b := testBuffer(20, 20)
		want := testBuffer(20, 20)
		Line(b, Style{Stroke: strokeColor, Width: 3}, image.Pt(3, 10), image.Pt(6, 10))
		for x := 3; x <= 6; x++ {
			Disc(want, image.Pt(x, 10), 1, strokeColor)
		}
		assert.Equal(it, painted(want), painted(b))
	})

	t.Run("clipped", func(it *testing.T) {
		b := testBuffer(10, 10)
		assert.NotPanics(it, func() {
			Line(b, Style{Stroke: strokeColor, Width: 1}, image.Pt(-5, -5), image.Pt(14, 14))
		})
		for i := 0; i < 10; i++ {
			assert.Equal(it, strokeColor, b.PixelAt(i, i))
		}
	})

	t.Run("axis-aligned", func(it *testing.T) {
		b := testBuffer(10, 10)
		style := Style{Stroke: strokeColor, Width: 1}
		HorizontalLine(b, style, 2, 3, 5)
		VerticalLine(b, style, 9, 0, 10)
		HorizontalLine(b, style, 0, 0, 0)
		assert.Len(it, painted(b), 15)
		assert.Equal(it, strokeColor, b.PixelAt(6, 3))
		assert.Equal(it, background, b.PixelAt(7, 3))
	})
}

func TestRect(t *testing.T) {
	tests := []struct {
		name         string
		geometry     Geometry
		width        int
		w, h         int
		frame, inner image.Rectangle
	}{
		{"outer", Outer, 2, 10, 10, image.Rect(3, 3, 17, 17), image.Rect(5, 5, 15, 15)},
		{"inner", Inner, 2, 10, 10, image.Rect(5, 5, 15, 15), image.Rect(7, 7, 13, 13)},
		{"center", Center, 2, 10, 10, image.Rect(4, 4, 16, 16), image.Rect(6, 6, 14, 14)},
		{"center-odd", Center, 3, 10, 10, image.Rect(4, 4, 17, 17), image.Rect(7, 7, 14, 14)},
		{"inner-collapsed", Inner, 2, 3, 3, image.Rect(5, 5, 8, 8), image.Rectangle{}},
		{"no-stroke", Inner, 0, 4, 2, image.Rect(5, 5, 9, 7), image.Rect(5, 5, 9, 7)},
		{"outer-empty", Outer, 1, 0, 0, image.Rect(4, 4, 6, 6), image.Rectangle{}},
		{"negative-size", Inner, 1, -4, 3, image.Rectangle{}, image.Rectangle{}},
	}
	pos := image.Pt(5, 5)
	for _, test := range tests {
		for _, strokeOnly := range []bool{false, true} {
			for _, filled := range []bool{false, true} {
				name := fmt.Sprintf("%s/strokeOnly=%t/fill=%t", test.name, strokeOnly, filled)
				t.Run(name, func(it *testing.T) {
					style := Style{Stroke: strokeColor, Width: test.width, Geometry: test.geometry}
					if filled {
						style = style.WithFill(fillColor)
					}
					assert.Equal(it, test.frame.Canon(), RectFrame(pos, test.w, test.h, test.width, test.geometry).Intersect(image.Rect(0, 0, 30, 30)))

					b := testBuffer(30, 30)
					Rect(b, style, pos, test.w, test.h, strokeOnly)
					for y := 0; y < 30; y++ {
						for x := 0; x < 30; x++ {
							p := image.Pt(x, y)
							want := background
							switch {
							case p.In(test.inner):
								if filled && !strokeOnly {
									want = fillColor
								}
							case p.In(test.frame):
								want = strokeColor
							}
							if got := b.PixelAt(x, y); got != want {
								it.Fatalf("pixel %s is %#06x, expected %#06x", p, got, want)
							}
						}
					}
				})
			}
		}
	}
}

func TestRectClipping(t *testing.T) {
	b := testBuffer(5, 5)
	assert.NotPanics(t, func() {
		Rect(b, Style{Stroke: strokeColor, Width: 3, Geometry: Outer}, image.Pt(0, 0), 4, 4, false)
	})
	assert.Equal(t, strokeColor, b.PixelAt(4, 4))
	assert.Equal(t, background, b.PixelAt(0, 0), "interior without fill is untouched")
}

// countingTarget counts every write that reaches the buffer.
type countingTarget struct {
	*pixel.Buffer
	writes int
}

func (c *countingTarget) SetPixel(x, y int, p pixel.Pixel) {
	c.writes++
	c.Buffer.SetPixel(x, y, p)
}

func TestHugeShapesStayOnTarget(t *testing.T) {
	t.Run("rect", func(it *testing.T) {
		b := &countingTarget{Buffer: testBuffer(10, 10)}
		style := Style{Stroke: strokeColor, Width: 1, Geometry: Outer}.WithFill(fillColor)
		Rect(b, style, image.Pt(-20000, -20000), 40000, 40000, false)

		assert.Equal(it, 100, b.writes)
		for _, v := range b.Pix {
			require.Equal(it, fillColor, v)
		}
	})

	t.Run("rect-edge", func(it *testing.T) {
		b := &countingTarget{Buffer: testBuffer(10, 10)}
		Rect(b, Style{Stroke: strokeColor, Width: 2, Geometry: Inner}, image.Pt(-50000, 3), 50004, 40000, true)

		assert.LessOrEqual(it, b.writes, 100)
		assert.Equal(it, strokeColor, b.PixelAt(2, 3), "top edge")
		assert.Equal(it, strokeColor, b.PixelAt(3, 9), "right edge")
		assert.Equal(it, background, b.PixelAt(1, 5), "interior")
		assert.Equal(it, background, b.PixelAt(4, 5), "right of the rectangle")
	})

	t.Run("circle", func(it *testing.T) {
		b := &countingTarget{Buffer: testBuffer(10, 10)}
		style := Style{Stroke: strokeColor, Width: 1, Geometry: Outer}.WithFill(fillColor)
		Circle(b, style, image.Pt(-30000, 5), 30003)

		assert.LessOrEqual(it, b.writes, 100)
		assert.Equal(it, fillColor, b.PixelAt(0, 5))
		assert.Equal(it, fillColor, b.PixelAt(3, 5))
		assert.Equal(it, strokeColor, b.PixelAt(4, 5))
		assert.Equal(it, background, b.PixelAt(5, 5))
	})

	t.Run("circle-away", func(it *testing.T) {
		b := &countingTarget{Buffer: testBuffer(10, 10)}
		Circle(b, Style{Stroke: strokeColor, Width: 100000}, image.Pt(-1000000, -1000000), 10)
		assert.Zero(it, b.writes)
	})

	t.Run("thick-line", func(it *testing.T) {
		b := &countingTarget{Buffer: testBuffer(10, 10)}
		Line(b, Style{Stroke: strokeColor, Width: 4000}, image.Pt(0, 0), image.Pt(9, 0))

		assert.Equal(it, 10*100, b.writes, "each of the ten stamps only covers the buffer")
		for _, v := range b.Pix {
			require.Equal(it, strokeColor, v)
		}
	})
}

func TestCircleNegativeRadius(t *testing.T) {
	b := testBuffer(9, 9)
	style := Style{Stroke: strokeColor, Width: 3, Geometry: Outer}.WithFill(fillColor)
	Circle(b, style, image.Pt(4, 4), -4)
	Disc(b, image.Pt(4, 4), -1, strokeColor)
	assert.Empty(t, painted(b))
}

func TestBox(t *testing.T) {
	b := testBuffer(6, 6)
	Box(b, image.Pt(1, 2), 3, 2, fillColor)
	got := painted(b)
	assert.Len(t, got, 6)
	for p, c := range got {
		assert.True(t, p.In(image.Rect(1, 2, 4, 4)), p.String())
		assert.Equal(t, fillColor, c)
	}
}

func TestText(t *testing.T) {
	glyphA, ok := font.Font5x7.Lookup('A')
	require.True(t, ok)

	t.Run("single", func(it *testing.T) {
		b := testBuffer(20, 20)
		origin := image.Pt(2, 3)
		Text(b, Style{Stroke: strokeColor, Width: 4, Geometry: Outer}, nil, origin, "A", 1)

		cell := image.Rect(origin.X, origin.Y, origin.X+font.Width, origin.Y+font.Height)
		got := painted(b)
		for p := range got {
			assert.Truef(it, p.In(cell), "pixel %s outside of the glyph cell", p)
		}
		for row := 0; row < font.Height; row++ {
			for col := 0; col < font.Width; col++ {
				want := background
				if glyphA.Set(col, row) {
					want = strokeColor
				}
				assert.Equalf(it, want, b.PixelAt(origin.X+col, origin.Y+row), "glyph pixel (%d,%d)", col, row)
			}
		}
	})

	t.Run("scaled", func(it *testing.T) {
		b := testBuffer(20, 25)
		Text(b, Style{Stroke: strokeColor}, font.Font5x7, image.Pt(0, 0), "A", 3)
		for y := 0; y < 21; y++ {
			for x := 0; x < 15; x++ {
				want := background
				if glyphA.Set(x/3, y/3) {
					want = strokeColor
				}
				require.Equalf(it, want, b.PixelAt(x, y), "pixel (%d,%d)", x, y)
			}
		}
	})

	t.Run("unknown-advances", func(it *testing.T) {
		got := testBuffer(30, 10)
		Text(got, Style{Stroke: strokeColor}, nil, image.Pt(0, 0), "~A", 1)

		want := testBuffer(30, 10)
		Text(want, Style{Stroke: strokeColor}, nil, image.Pt(font.Advance, 0), "A", 1)
		assert.Equal(it, painted(want), painted(got))
	})

	t.Run("custom-source", func(it *testing.T) {
		b := testBuffer(30, 10)
		src := font.Map{'x': {0b10000}}
		Text(b, Style{Stroke: strokeColor}, src, image.Pt(1, 1), "xAx", 2)
		assert.Equal(it, map[image.Point]pixel.Pixel{
			{1, 1}: strokeColor, {2, 1}: strokeColor, {1, 2}: strokeColor, {2, 2}: strokeColor,
			{25, 1}: strokeColor, {26, 1}: strokeColor, {25, 2}: strokeColor, {26, 2}: strokeColor,
		}, painted(b))
	})

	t.Run("zero-scale", func(it *testing.T) {
		b := testBuffer(10, 10)
		Text(b, Style{Stroke: strokeColor}, nil, image.Pt(0, 0), "A", 0)
		assert.Empty(it, painted(b))
	})
}

func TestTextSize(t *testing.T) {
	assert.Equal(t, image.Pt(5, 7), TextSize("A", 1))
	assert.Equal(t, image.Pt(34, 14), TextSize("ABC", 2))
	assert.Equal(t, image.Pt(11, 7), TextSize("é~", 1))
	assert.Equal(t, image.Point{}, TextSize("", 3))
	assert.Equal(t, image.Point{}, TextSize("A", 0))
}

func TestBlit(t *testing.T) {
	src := pixel.NewBufferFill(3, 2, fillColor)
	b := testBuffer(8, 8)
	Blit(b, Style{Stroke: strokeColor, Width: 1, Geometry: Outer}, image.Pt(1, 1), src)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := image.Pt(x, y)
			want := background
			switch {
			case p.In(image.Rect(1, 1, 4, 3)):
				want = fillColor
			case p.In(image.Rect(0, 0, 5, 4)):
				want = strokeColor
			}
			require.Equalf(t, want, b.PixelAt(x, y), "pixel %s", p)
		}
	}

	assert.NotPanics(t, func() {
		Blit(b, Style{}, image.Pt(6, 7), pixel.NewBufferFill(4, 4, fillColor))
	})
	assert.Equal(t, fillColor, b.PixelAt(7, 7))
}

func TestParseGeometry(t *testing.T) {
	for _, g := range []Geometry{Inner, Outer, Center} {
		v, err := ParseGeometry(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, v)
	}
	_, err := ParseGeometry("sideways")
	assert.ErrorIs(t, err, ErrGeometry)
}

func TestStyleFill(t *testing.T) {
	s := Style{Stroke: strokeColor}
	_, ok := s.FillColor()
	assert.False(t, ok)

	f := s.WithFill(fillColor)
	c, ok := f.FillColor()
	assert.True(t, ok)
	assert.Equal(t, fillColor, c)
	_, ok = s.FillColor()
	assert.False(t, ok, "WithFill returns a copy")

	_, ok = f.WithoutFill().FillColor()
	assert.False(t, ok)
}
