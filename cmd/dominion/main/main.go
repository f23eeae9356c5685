package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dominion/cmd/dominion"
	"github.com/arthur-debert/dominion/pkg/style"
)

func main() {
	rootCmd := dominion.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
