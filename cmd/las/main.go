// Command las reads, converts, and compares CWLS LAS 2.0 well log files.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"go.wellcurve.dev/las/fangs"
)

func main() {
	root := &cobra.Command{
		Use:   "las",
		Short: "Read, convert, and compare CWLS LAS 2.0 well log files",
	}

	root.AddCommand(newConvertCommand())
	root.AddCommand(newDiffCommand())

	if err := fang.Execute(context.Background(), root, fang.WithErrorHandler(fangs.ErrorHandler)); err != nil {
		slog.Error("las: command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
