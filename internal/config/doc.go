// Package config loads the dirty.json file the dirty CLI reads its serve
// settings from.
//
// All fields are optional. A file like
//
//	{
//	  "addr": "0.0.0.0:8080",
//	  "flush_every": 8,
//	  "compress": true
//	}
//
// overrides just the fields it names; Load falls back to defaults for the
// rest, and for the whole file when dirty.json is absent. Flags on the
// serve command override the file in turn.
package config
