package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Dir is the on-disk directory checked before the embedded files, so edited
// levels are picked up without rebuilding.
var Dir = "levels"

// Load reads a level by name from disk, falling back to the embedded copy,
// and parses it.
func Load(name string) (*Description, error) {
	data, err := ReadFile(name)
	if err != nil {
		return nil, err
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	if desc.Name == "" {
		clean := cleanLevelPath(name)
		desc.Name = strings.TrimSuffix(clean, path.Ext(clean))
	}
	return desc, nil
}

// ReadFile returns the raw bytes of a level file.
func ReadFile(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if clean == "" {
		return nil, fmt.Errorf("levels: empty level name")
	}
	if filepath.IsAbs(name) {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
		return data, nil
	}
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	data, err := LevelsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return data, nil
}

// Names lists the embedded level files.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isLevelFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func cleanLevelPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if filepath.IsAbs(p) {
		return path.Base(s)
	}
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if path.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func isLevelFile(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".yaml" || ext == ".yml" || ext == ".json"
}
