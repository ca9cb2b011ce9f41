// Package params reads flat "name value" parameter files into a fixed,
// pre-registered schema.
//
// # Basic Usage
//
// A Store is created once per schema, registered against, then loaded:
//
//	store := params.New()
//	store.MustRegister("port", "8080") // with default
//	store.MustRegister("host", "")     // no default
//
//	if err := store.LoadFromFile("server.conf"); err != nil {
//	    log.Fatal(err)
//	}
//
//	port, err := store.Get("port") // "8080" unless the file overrides it
//
// Values are returned as strings; numeric or boolean interpretation is up
// to the caller.
//
// # File Format
//
// One parameter per line. The name ends at the first space, the rest of
// the line is the value. Everything from the comment prefix (default "#")
// to the end of the line is ignored, as are blank lines:
//
//	# server settings
//	port 9090
//	greeting hello world   # value is "hello world"
//
// Only the plain space character is trimmed around names and values, so
// tabs inside a value are preserved.
//
// Names that appear in a file but were never registered are reported to
// the store's UnknownHandler and otherwise ignored. The first malformed
// line aborts the load; lines before it stay applied.
//
// # Writing Files
//
// WriteDefaultFile writes every parameter that currently holds a value in
// the same format, so a file written by one store can be loaded by another
// store with the same schema. Dump prints a human-readable listing that
// includes unset parameters.
package params
