package main

import (
	"os"

	"github.com/solatis/rulebuilders/cmd/rulebuilders/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
