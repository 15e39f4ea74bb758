// Command server runs the time tracking backend. It serves the static
// frontend, session endpoints, dropdown options, and the form submission
// endpoints that write to the work-management boards.
//
// Configuration comes from environment variables or a YAML file; see
// internal/config. Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/helmling/zeiterfassung-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
