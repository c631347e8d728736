package main

import (
	"os"

	"github.com/POPASMALINOIS/control-de-muelles/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
