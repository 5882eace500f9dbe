package main

import (
	"os"

	"github.com/eletroplus/eletroseed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
