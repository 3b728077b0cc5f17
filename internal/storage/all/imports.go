// Package all wires all built-in storage backends into the storage factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) causes the init functions of each concrete backend to run, which
// register their factories with the storage package. It makes the following
// storage kinds available at runtime:
//
//   - "csvfile"  (salesclean/internal/storage/csvfile)
//   - "sqlite"   (salesclean/internal/storage/sqlite)
//   - "postgres" (salesclean/internal/storage/postgres)
//
// A binary that only needs a subset can blank-import the individual backend
// packages instead.
package all

import (
	_ "salesclean/internal/storage/csvfile"
	_ "salesclean/internal/storage/postgres"
	_ "salesclean/internal/storage/sqlite"
)
