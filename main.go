package main

import (
	"os"

	"github.com/Johannes-Berggren/branchgoblin/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
