// Package main is the entry point for the modforge CLI.
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/modforge/cli/internal/cmd"
	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/version"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Get().Short()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	); err != nil {
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}

// errorHandler prints err unless the command layer already did.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
