// Command rasterdemo renders charts, text and shapes into image files, the
// terminal (sixel) or a Linux framebuffer.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/raster"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "render raster demo scenes",
	Long:             "Render charts, bitmap text and stroke geometry samples with the raster packages.",
	SilenceUsage:     true,
	TraverseChildren: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	debugFlag bool
	out       output
)

func init() {
	cobra.EnablePrefixMatching = true
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&debugFlag, `debug`, `d`, false, `log debug records and print error stacks`)
	flags.StringVarP(&out.path, `output`, `o`, ``, `output file (.png or .bmp)`)
	flags.StringVar(&out.device, `fb`, ``, `framebuffer device, for example /dev/fb0`)
	flags.BoolVar(&out.sixel, `sixel`, false, `write the frame to the terminal as sixel graphics`)
	flags.IntVar(&out.scale, `scale`, 1, `integer output magnification`)
	flags.StringVar(&out.rotation, `rotate`, `0`, `output rotation (0, 90, 180 or 270)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	if err := fn(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}
