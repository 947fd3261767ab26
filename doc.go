// Package autojson reads, writes, updates, creates, deletes and bulk-loads
// JSON-encoded files on a local filesystem.
//
// Every operation is a single stateless pass: resolve the path, perform one
// filesystem call plus one encode or decode, and translate any failure into
// the three-kind error taxonomy (KindJSON, KindFile, KindDecode). There is no
// caching, no locking and no retry; the filesystem belongs to the caller.
//
// The package-level functions operate on the host filesystem. A Store built
// with WithFs can target any afero backend, which tests use to run against an
// in-memory filesystem.
package autojson
