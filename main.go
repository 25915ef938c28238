package main

import (
	"os"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
