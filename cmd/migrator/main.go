package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/migrate"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
)

func main() {
	cfg := config.MustLoad()

	cmd := migrate.NewCommand(func(ctx context.Context) (*sql.DB, func(), error) {
		dbpool, err := repository.NewDatabase(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}

		dtb := stdlib.OpenDBFromPool(dbpool)

		return dtb, func() {
			_ = dtb.Close()
			dbpool.Close()
		}, nil
	})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}

	log.Println("✅ Done")
}
