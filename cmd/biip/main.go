package main

import (
	"os"

	"github.com/dshills/biip/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
