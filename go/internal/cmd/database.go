package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mcdev12/shuttleleague/go/internal/dbconfig"
)

func setupDatabase(ctx context.Context) (*sql.DB, error) {
	database, err := dbconfig.Open(ctx, dbconfig.NewConfigFromEnv())
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	return database, nil
}
