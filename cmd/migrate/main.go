// Command migrate runs schema operations for the content store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"polyglot/internal/config"
	"polyglot/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status|reset>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	ctx := context.Background()
	switch strings.ToLower(strings.TrimSpace(flag.Arg(0))) {
	case "up":
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		log.Println("schema applied")
	case "status":
		status, err := database.SchemaStatus(ctx, db)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		for _, table := range status {
			log.Printf("%-20s exists=%t rows=%d", table.Table, table.Exists, table.Rows)
		}
	case "reset":
		if cfg.IsProduction() {
			return fmt.Errorf("refusing to reset a production store")
		}
		if err := database.Reset(ctx, db); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		log.Println("schema reset")
	default:
		return usage()
	}

	return nil
}
