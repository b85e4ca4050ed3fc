// Command server runs the sweet shop HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// see internal/config for the full list.
package main

import (
	"context"
	"log"

	"github.com/sweetlab/sweetshop-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
