package main

import (
	"os"

	"github.com/glowpro/glowpro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
