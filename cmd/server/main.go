// Command server runs the scheduling-engine REST API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment
// variables; see internal/config. Exit codes: 0 = clean shutdown,
// 1 = startup or serve error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/mkolosov/noteflow-srs/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
