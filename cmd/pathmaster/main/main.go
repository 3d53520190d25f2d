package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pathmaster/cmd/pathmaster"
	"github.com/arthur-debert/pathmaster/pkg/ui"
)

func main() {
	rootCmd := pathmaster.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		mode := ui.ModeAuto.Resolve(os.Stderr)
		fmt.Fprintln(os.Stderr, ui.FormatError(err, mode))
		os.Exit(1)
	}
}
