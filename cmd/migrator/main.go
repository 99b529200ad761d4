package main

import (
	"errors"
	"flag"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var postgresDSN, migrationsPath string
	var down bool

	flag.StringVar(&postgresDSN, "postgres-dsn", "", "postgres connection string")
	flag.StringVar(&migrationsPath, "migrations-path", "", "path to migration files")
	flag.BoolVar(&down, "down", false, "roll back one migration instead of applying all")
	flag.Parse()

	if postgresDSN == "" {
		postgresDSN = os.Getenv("POSTGRES_DSN")
		if postgresDSN == "" {
			panic("postgres dsn is required (-postgres-dsn or POSTGRES_DSN)")
		}
	}
	if migrationsPath == "" {
		migrationsPath = os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			panic("migrations path is required (-migrations-path or MIGRATIONS_PATH)")
		}
	}

	m, err := migrate.New("file://"+migrationsPath, postgresDSN)
	if err != nil {
		panic(err)
	}

	if down {
		if err = m.Steps(-1); err != nil {
			panic(err)
		}
		return
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		panic(err)
	}
}
