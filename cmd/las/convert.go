package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"go.wellcurve.dev/las"
	"go.wellcurve.dev/las/internal/filepaths"
)

func newConvertCommand() *cobra.Command {
	var (
		output string
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input.las>",
		Short: "Convert a LAS 2.0 file to JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			matches, err := filepaths.Expand(args[0])
			if err != nil {
				return err
			}

			if len(matches) != 1 {
				return fmt.Errorf("las convert: expected exactly one input file, got %d", len(matches))
			}

			return runConvert(matches[0], output, format, force)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (extension must match --format)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml, or yml")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite the output file and create missing directories")

	return cmd
}

func runConvert(input, output, format string, force bool) error {
	if !strings.HasSuffix(strings.ToLower(input), ".las") {
		return fmt.Errorf("las convert: input path %q must end in .las", input)
	}

	format = strings.ToLower(format)
	if format != "json" && format != "yaml" && format != "yml" {
		return fmt.Errorf("las convert: unknown format %q (want json, yaml, or yml)", format)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}

	wantExt := "." + format
	if got := filepath.Ext(output); !strings.EqualFold(got, wantExt) {
		return fmt.Errorf("las convert: output path %q must have extension %s", output, wantExt)
	}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("las convert: %w", err)
	}
	defer in.Close()

	if !force {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("las convert: %q already exists (use --force to overwrite)", output)
		}
	}

	if dir := filepath.Dir(output); force {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("las convert: %w", err)
		}
	}

	sink := las.NewAstSink()
	if err := las.NewParser(in, sink).Parse(); err != nil {
		return fmt.Errorf("las convert: %w", err)
	}

	file, err := sink.File()
	if err != nil {
		return fmt.Errorf("las convert: %w", err)
	}

	var out []byte
	if format == "json" {
		out, err = las.EncodeJSON(file)
	} else {
		out, err = las.EncodeYAML(file)
	}

	if err != nil {
		return fmt.Errorf("las convert: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(output, flags, 0o644)
	if err != nil {
		return fmt.Errorf("las convert: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(out); err != nil {
		return fmt.Errorf("las convert: %w", err)
	}

	return nil
}
