package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/asciiart/citaa/diagram"
	"github.com/asciiart/citaa/gridio"
	"github.com/asciiart/citaa/render"
)

var (
	inputPath  string
	outputPath string

	rootCmd = &cobra.Command{
		Use:   "citaa",
		Short: "Convert an ASCII-art diagram into a rendered PNG",
		Long: `citaa reads an ASCII-art diagram of boxes, lines and arrows and
renders it to a PNG image, following the shape-extraction pipeline:
grid decode, component trace, compaction, branch and loop extraction.`,
		RunE: runConvert,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"path to the ASCII-art source file (default: stdin)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "o.png",
		"path to write the rendered PNG to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	src, err := openInput()
	if err != nil {
		return err
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("citaa: reading input: %w", err)
	}

	g, err := gridio.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("citaa: decoding grid: %w", err)
	}

	components, err := diagram.Extract(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("citaa: extracting shapes: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("citaa: creating %s: %w", outputPath, err)
	}
	defer out.Close()

	if err := render.Render(out, g.Width, g.Height, components, nil); err != nil {
		return fmt.Errorf("citaa: rendering: %w", err)
	}
	return nil
}

func openInput() (io.ReadCloser, error) {
	if inputPath == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("citaa: opening %s: %w", inputPath, err)
	}
	return f, nil
}
