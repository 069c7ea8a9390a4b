// Package localfile provides a single-file session.Storage backend, the
// durable local-storage analogue for processes without a browser. All keys
// live in one JSON file replaced atomically on every mutation.
package localfile
