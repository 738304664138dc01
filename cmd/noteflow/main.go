// Command noteflow is the offline CLI for the scheduling engine.
package main

import (
	"os"

	"github.com/mkolosov/noteflow-srs/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
