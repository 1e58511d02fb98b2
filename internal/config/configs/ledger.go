package configs

import "strings"

// Ledger selects the account store. Driver is "postgres" (default) or
// "memory"; the memory store loses all state on exit.
type Ledger struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Memory reports whether the in-process store was requested.
func (c Ledger) Memory() bool {
	return strings.EqualFold(c.Driver, "memory")
}
