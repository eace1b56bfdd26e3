package main

import (
	"os"

	"github.com/mdcode-cli/mdcode/internal/cmd"
)

func main() {
	cmd.Execute(os.Args[1:], os.Stdout, os.Stderr)
}
