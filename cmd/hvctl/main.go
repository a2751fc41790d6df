// cmd/hvctl/main.go

package main

import (
	"os"

	"github.com/hvlab/hvctl/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
