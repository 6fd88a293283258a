package main

import (
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/core/server"
)

// @title CalFind API
// @version 1.0
// @description API backend for CalFind - group availability coordination and document signing

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
