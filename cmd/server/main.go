// Command server runs the credit tracker HTTP API.
package main

import (
	"context"
	"log"

	"github.com/credtrack/credtrack-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
