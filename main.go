package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/larifa/raffles-api/cmd/app"
)

// @securityDefinitions.apikey IntegrationKey
// @in header
// @name Authorization
// @description Dolibarr integration key, accepted as "Bearer <key>" or as the bare key
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
