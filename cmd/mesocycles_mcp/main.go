// Package main runs the mesocycles MCP server over stdio for a single user.
// The same tools are mounted on the main backend at /mcp, bound to the logged-in user.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/2beens/mesocycles/internal/auth"
	"github.com/2beens/mesocycles/internal/catalog"
	"github.com/2beens/mesocycles/internal/config"
	"github.com/2beens/mesocycles/internal/db"
	mesomcp "github.com/2beens/mesocycles/internal/mcp"
	"github.com/2beens/mesocycles/internal/mesocycle"
	"github.com/2beens/mesocycles/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userEmail := flag.String("user", "", "email of the user whose mesocycles are exposed")
	flag.Parse()

	if *userEmail == "" {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	user, err := auth.NewUsersRepo(dbPool).GetByEmail(ctx, *userEmail)
	if err != nil {
		log.Fatalf("get user [%s]: %v", *userEmail, err)
	}

	mesocycleService := mesocycle.NewService(
		mesocycle.NewRepo(dbPool),
		// nothing scrapes the stdio server
		metrics.NewManager("mcp", "stdio", prometheus.NewRegistry()),
	)
	catalogService := catalog.NewService(
		catalog.NewRepo(dbPool),
		catalog.NewGlobalCache(cfg.CatalogCacheSizeMB, cfg.CatalogCacheTTLSeconds),
	)
	server := mesomcp.NewServer(user.ID, mesocycleService, catalogService)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
