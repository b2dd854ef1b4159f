package db

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type DBManager struct {
	DB *sqlx.DB
}

func NewDBConnection(databasePath string, migrationsURL string) (*DBManager, error) {
	dbx, err := sqlx.Open("sqlite3", databasePath)
	if err != nil {
		return nil, err
	}

	if err := dbx.Ping(); err != nil {
		dbx.Close()
		return nil, err
	}

	driver, err := sqlite3.WithInstance(dbx.DB, &sqlite3.Config{})
	if err != nil {
		dbx.Close()
		return nil, err
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsURL, "sqlite3", driver)
	if err != nil {
		dbx.Close()
		return nil, err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		dbx.Close()
		return nil, err
	}

	return &DBManager{
		DB: dbx,
	}, nil
}

func (dbManager *DBManager) Close() error {
	return dbManager.DB.Close()
}
