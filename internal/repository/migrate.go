package repository

import (
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

// Migrate applies every pending goose migration found in dir.
func Migrate(cfg DBConfig, dir string) error {
	db, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		return errors.New("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err = goose.Up(db, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
