package main

import (
	"github.com/uygun9544/slipperduel/internal/cli"
)

func main() {
	cli.Execute()
}
