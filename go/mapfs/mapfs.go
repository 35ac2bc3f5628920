// Package mapfs presents files given by path on the command line as one flat
// fs.FS, keyed by base name.
package mapfs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// MapFS maps a base name to the path of the file on disk.
type MapFS map[string]string

var _ fs.ReadDirFS = (MapFS)(nil)

func (m MapFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		entries, err := m.ReadDir(".")
		if err != nil {
			return nil, err
		}
		return &rootDir{entries: entries}, nil
	}

	path, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fs.ErrNotExist, name)
	}
	return os.Open(path)
}

// ReadDir lists the files that still exist on disk, sorted by name.
func (m MapFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name != "." {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	var entries []fs.DirEntry
	for _, base := range m.Names() {
		info, err := os.Stat(m[base])
		if err != nil {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(renamed{FileInfo: info, name: base}))
	}
	return entries, nil
}

// Add registers path under its base name and returns that name. Two
// different paths with the same base name can not both be added.
func (m MapFS) Add(path string) (string, error) {
	base := filepath.Base(path)
	if existing, ok := m[base]; ok && existing != path {
		return "", fmt.Errorf("%s and %s have the same name", existing, path)
	}
	m[base] = path
	return base, nil
}

func (m MapFS) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// renamed reports a file under its name in the MapFS.
type renamed struct {
	fs.FileInfo
	name string
}

func (r renamed) Name() string { return r.name }

// rootDir is the "." directory of a MapFS
type rootDir struct {
	entries []fs.DirEntry
	pos     int
}

func (d *rootDir) Stat() (fs.FileInfo, error) {
	return dirInfo{}, nil
}

func (d *rootDir) Read([]byte) (int, error) {
	return 0, io.EOF // directories have no data
}

func (d *rootDir) Close() error {
	return nil
}

func (d *rootDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if n <= 0 {
		entries := d.entries[d.pos:]
		d.pos = len(d.entries)
		return entries, nil
	}
	if d.pos >= len(d.entries) {
		return nil, io.EOF
	}
	if d.pos+n > len(d.entries) {
		n = len(d.entries) - d.pos
	}
	entries := d.entries[d.pos : d.pos+n]
	d.pos += n
	return entries, nil
}

type dirInfo struct{}

func (dirInfo) Name() string       { return "." }
func (dirInfo) Size() int64        { return 0 }
func (dirInfo) Mode() fs.FileMode  { return fs.ModeDir | 0o555 }
func (dirInfo) ModTime() time.Time { return time.Time{} }
func (dirInfo) IsDir() bool        { return true }
func (dirInfo) Sys() interface{}   { return nil }
