package composer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/promptdeck/internal/registry"
)

// Loader supplies raw module content by id.
type Loader interface {
	Load(id string) (string, error)
}

// DirLoader reads module content from <dir>/<id>.md.
type DirLoader struct {
	Dir string
}

// NewDirLoader returns a loader rooted at dir.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{Dir: dir}
}

// Load reads the content file for id. A missing file is reported as an
// unknown module so callers can map it to the same exit code as a registry
// miss.
func (l *DirLoader) Load(id string) (string, error) {
	path := filepath.Join(l.Dir, id+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &registry.UnknownModuleError{ID: id}
		}
		return "", fmt.Errorf("reading module content %s: %w", path, err)
	}
	return string(data), nil
}

// MapLoader serves content from an in-memory map. Useful for embedding and
// tests.
type MapLoader map[string]string

func (l MapLoader) Load(id string) (string, error) {
	content, ok := l[id]
	if !ok {
		return "", &registry.UnknownModuleError{ID: id}
	}
	return content, nil
}
