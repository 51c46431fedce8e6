package main

import (
	"log"
	"net/http"

	"school_registry/internal/config"
	"school_registry/internal/logger"
	"school_registry/internal/middleware"
	"school_registry/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect and migrate; the handle is passed down, no global session
	db := config.InitDB()

	r := routes.SetupRouter(db)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
