package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"dropy/db/migrations"
)

// Migrate brings the database at addr to migrations.Version using the SQL
// files embedded in the migrations package and returns the version it
// started from. A dirty database is an error.
func Migrate(addr string) (uint, error) {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return 0, err
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}
	if dirty {
		return from, fmt.Errorf("database is in dirty state at version %d", from)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, err
	}
	return from, nil
}
