// Package assethashmap walks a directory tree and maps every selected file to
// a digest of its content, for cache-busting asset pipelines and integrity checks.
//
// # Core API
//
// The main entry point is GetHashesMap:
//
//	hashes, err := assethashmap.GetHashesMap(ctx, "public", &assethashmap.Options{
//		Include: []string{"js", "css"},
//	})
//	// hashes["js/app.js"] is the hex SHA-1 of public/js/app.js
//
// Keys are paths relative to the root (or to Options.BasePath) with forward
// slashes, or absolute paths when Options.Absolute is set. Files whose name
// starts with a dot are skipped unless Options.All is set.
//
// Content is decoded as UTF-8 text before hashing and the default digest is
// SHA-1, so a digest equals `shasum` of the file for valid UTF-8 content.
//
// # Errors
//
// A missing root fails with *PathNotFoundError (errors.Is(err, ErrPathNotFound)).
// An unreadable file fails the whole call with *FileReadError
// (errors.Is(err, ErrFileRead)); no partial map is returned.
//
// # Output
//
// NewManifest sorts a map by key and writes it in shasum or JSON format.
// FindDuplicates groups keys that share a digest.
//
// # Configuration
//
// LoadConfig reads defaults from an INI file, and Config.Options turns them
// into Options:
//
//	[filehash]
//	default = sha256
//
//	[filter]
//	include = js,css
//	ignore = ^node_modules$
package assethashmap
