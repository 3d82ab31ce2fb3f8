package main

import (
	"os"

	"github.com/kilomoco/kilomoco/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
