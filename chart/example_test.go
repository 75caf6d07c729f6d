package chart_test

import (
	"fmt"

	"github.com/BeatGlow/raster/chart"
)

func ExampleMapper() {
	m, err := chart.NewMapper(chart.Range{Min: -10, Max: 10}, chart.Range{Min: -5, Max: 5}, 100, 100)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.ToBuffer(chart.Point{X: 0, Y: 0}))
	fmt.Println(m.ToBuffer(chart.Point{X: 10, Y: 5}))
	fmt.Printf("%+v\n", m.Axes())
	// Output:
	// (50,50)
	// (99,0)
	// {Vertical:50 HasVertical:true Horizontal:50 HasHorizontal:true}
}

func ExampleChart_Render() {
	c, err := chart.New(chart.Config{
		Width:  9,
		Height: 5,
		X:      chart.Range{Min: 0, Max: 8},
		Y:      chart.Range{Min: -2, Max: 2},
	})
	if err != nil {
		panic(err)
	}
	c.Render(chart.Lines, []chart.Point{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 8, Y: 0}})

	b := c.Buffer()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			switch b.PixelAt(x, y) {
			case chart.DefaultDataColor:
				fmt.Print("#")
			case chart.DefaultAxisColor:
				fmt.Print("+")
			default:
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	// Output:
	// +...##...
	// +.##..##.
	// ##++++++#
	// +........
	// +........
}
