package main

import (
	"os"

	"github.com/howeyc/recur/recur/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
