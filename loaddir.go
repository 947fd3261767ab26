package autojson

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const jsonExt = ".json"

var errNotDirectory = errors.New("not a directory")

// LoadDir parses every *.json file in dir and returns the documents keyed by
// file stem (name without extension). With recursive set, subdirectories are
// descended as well; stems are not qualified by subdirectory, so on a stem
// collision the lexically later file wins. A missing directory is an error
// unless createMissing is set, in which case it is created (with ancestors)
// and an empty map is returned.
//
// The call aborts on the first unreadable or unparseable file; there is no
// partial result.
func (s *Store) LoadDir(dir string, recursive, createMissing bool) (map[string]any, error) {
	info, err := s.fs.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if !createMissing {
			return nil, fileError("load", dir, fs.ErrNotExist)
		}
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fileError("mkdir", dir, err)
		}
		return map[string]any{}, nil
	case err != nil:
		return nil, fileError("stat", dir, err)
	case !info.IsDir():
		return nil, fileError("load", dir, errNotDirectory)
	}

	docs := make(map[string]any)

	if !recursive {
		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			return nil, fileError("load", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != jsonExt {
				continue
			}
			if err := s.loadInto(docs, filepath.Join(dir, entry.Name())); err != nil {
				return nil, err
			}
		}
		return docs, nil
	}

	walk := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fileError("walk", path, err)
		}
		if info.IsDir() || filepath.Ext(path) != jsonExt {
			return nil
		}
		return s.loadInto(docs, path)
	}
	if err := afero.Walk(s.fs, dir, walk); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Store) loadInto(docs map[string]any, path string) error {
	var doc any
	if err := s.ReadInto(path, &doc); err != nil {
		return err
	}
	docs[stem(path)] = doc
	return nil
}

// stem is the base name of path without its extension, the bulk-load key.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
