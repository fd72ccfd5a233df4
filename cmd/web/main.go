// @title           beautycity API
// @version         1.0
// @description     API каталога салонов красоты и мастеров.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import (
	"github.com/joho/godotenv"

	"github.com/Gob26/beautycity/internal/app"
)

func main() {
	// Optional .env for local development, real deployments set env vars.
	_ = godotenv.Load()

	app.Run()
}
