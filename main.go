package main

import (
	"bump-planner/core/logger"
	"bump-planner/core/server"
)

// @title BumpPlanner Calendar API
// @version 1.0
// @description Calendar aggregation backend for the BumpPlanner pregnancy app

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
