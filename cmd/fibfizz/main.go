package main

import (
	"os"

	"github.com/aaron-oconnor/Fibonacci/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout))
}
