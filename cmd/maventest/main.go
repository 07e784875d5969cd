package main

import (
	"fmt"
	"io"
	"os"

	"github.com/helsinki-cs/maventest/internal/config"
)

var runApp = config.Run

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := runApp(args, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
