package main

import (
	"dinoreserve/config"
	"dinoreserve/di"
	"dinoreserve/shared/logger"

	_ "dinoreserve/docs"
)

// @title Dino Reserve API
// @version 1.0
// @description Table reservation service for dinosaur themed restaurants.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
