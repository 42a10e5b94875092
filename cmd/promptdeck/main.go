package main

import (
	"os"

	"github.com/dshills/promptdeck/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
