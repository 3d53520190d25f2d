package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pathmaster/cmd/pathmaster"
)

func main() {
	rootCmd := pathmaster.NewRootCmd()

	if err := doc.GenMan(rootCmd, pathmaster.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
