// Package framestore keeps composed frames on disk between generation and
// container assembly.
package framestore

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	filePrefix = "frame_"
	fileExt    = ".png"
)

// Entry is one stored frame.
type Entry struct {
	Index int
	Path  string
}

type Store struct {
	dir     string
	created bool // Open made dir, so Close may remove it whole
	written map[int]string
}

// Open prepares dir for a new run. Frame files left by an earlier run are
// removed so they cannot leak into the next container. An empty dir selects
// a fresh directory under the system temp location.
func Open(dir string) (*Store, error) {
	if dir == "" {
		tmp, err := os.MkdirTemp("", "spriteanim_")
		if err != nil {
			return nil, err
		}
		return &Store{dir: tmp, created: true, written: map[int]string{}}, nil
	}

	created := false
	fi, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		created = true
	case err != nil:
		return nil, err
	case !fi.IsDir():
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	s := &Store{dir: dir, created: created, written: map[int]string{}}
	stale, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, e := range stale {
		if err := os.Remove(e.Path); err != nil {
			return nil, fmt.Errorf("remove stale frame %s: %w", e.Path, err)
		}
	}
	return s, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Path is the file name a frame with the given global index is stored under.
func (s *Store) Path(index int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s%d%s", filePrefix, index, fileExt))
}

// Put encodes img as PNG under its global index.
func (s *Store) Put(index int, img image.Image) (string, error) {
	path := s.Path(index)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode frame %d: %w", index, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	s.written[index] = path
	return path, nil
}

// List returns the stored frames ordered by numeric index, so frame_10
// follows frame_9 whatever order the directory is read in.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		index, ok := parseIndex(de.Name())
		if !ok {
			continue
		}
		entries = append(entries, Entry{Index: index, Path: filepath.Join(s.dir, de.Name())})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Index < entries[j].Index
	})
	return entries, nil
}

// Paths is List reduced to file names.
func (s *Store) Paths() ([]string, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths, nil
}

// Close removes the directory if Open created it. A directory that existed
// before Open keeps everything except the frames this store wrote.
func (s *Store) Close() error {
	if s.created {
		return os.RemoveAll(s.dir)
	}

	var errs []error
	for _, path := range s.written {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	s.written = map[int]string{}
	return errors.Join(errs...)
}

func parseIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt)
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
