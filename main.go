package main

import (
	"os"

	"github.com/mkale/studyloop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
