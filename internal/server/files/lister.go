package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	EntryTypeFolder = "folder"
	EntryTypeFile   = "file"
)

// Entry describes one directory child. Size and Extension are nil for
// folders, matching the wire format clients expect.
type Entry struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Size      *int64    `json:"size"`
	Modified  time.Time `json:"modified"`
	Extension *string   `json:"extension"`
}

// listDir enumerates the immediate children of dir, stats each one, and
// returns them sorted folders-before-files, then by name (byte order)
// within each group. The listing is read-only and idempotent.
func listDir(dir string) ([]Entry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		info, err := child.Info()
		if err != nil {
			return nil, err
		}

		e := Entry{
			Name:     child.Name(),
			Type:     EntryTypeFile,
			Modified: info.ModTime(),
		}
		if child.IsDir() {
			e.Type = EntryTypeFolder
		} else {
			size := info.Size()
			ext := strings.ToLower(filepath.Ext(child.Name()))
			e.Size = &size
			e.Extension = &ext
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Type != entries[j].Type {
			return entries[i].Type == EntryTypeFolder
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
