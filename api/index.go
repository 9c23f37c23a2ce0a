package api

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/FunnyShadow/pterodactyl-files/egg"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// entry is one egg in the served library. The listing key is the file name
// without its extension.
type entry struct {
	File   string `json:"file"`
	Name   string `json:"name"`
	Format string `json:"format"`

	path string
}

// index is the in-memory listing of the eggs directory.
type index struct {
	root string

	mu      sync.RWMutex
	entries map[string]*entry
}

func newIndex(root string) *index {
	return &index{
		root:    root,
		entries: make(map[string]*entry),
	}
}

// reload rescans the eggs directory and swaps the listing in one step. Eggs
// that fail to parse are logged and left out.
func (i *index) reload() error {
	entries := make(map[string]*entry)

	err := filepath.WalkDir(i.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		format := formatYAML
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yml", ".yaml":
		case ".json":
			format = formatJSON
		default:
			return nil
		}

		e, err := egg.LoadFromDisk(path)
		if err != nil {
			log.WithField("file", path).WithError(err).Error("Skipping unparsable egg.")
			return nil
		}

		key := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		entries[key] = &entry{
			File:   d.Name(),
			Name:   e.Name,
			Format: format,
			path:   path,
		}
		return nil
	})
	if err != nil {
		return err
	}

	i.mu.Lock()
	i.entries = entries
	i.mu.Unlock()
	return nil
}

// list returns the library sorted by file name.
func (i *index) list() []*entry {
	i.mu.RLock()
	defer i.mu.RUnlock()

	entries := make([]*entry, 0, len(i.entries))
	for _, e := range i.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].File < entries[b].File })
	return entries
}

// get returns the egg registered under name, or nil when unknown.
func (i *index) get(name string) *entry {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.entries[name]
}
