package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/shyamrajvs/hungrx-admin/configs"
	"github.com/shyamrajvs/hungrx-admin/routes"
)

// Runs the local catalog API used for development and integration tests.
// It implements the same HTTP contract as the production backend the admin
// panel talks to; it is not that backend.
func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed demo data failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	// Serve uploaded logos
	r.Static("/public", cfg.UploadDir)

	routes.RegisterRoutes(r, configs.DB(), cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("catalog API running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
