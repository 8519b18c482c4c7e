package translations

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Store holds global holiday-name translations keyed by holiday key, then by
// locale tag. It is immutable after construction and safe for concurrent use.
type Store struct {
	byKey map[string]map[string]string
}

// Load reads every *.yaml file in fsys and merges the contained tables into a
// Store. Each file maps holiday keys to locale/name pairs:
//
//	newYearsDay:
//	  en: New Year's Day
//	  de: Neujahr
//
// Later files fill gaps but never overwrite entries from earlier files.
func Load(fsys fs.FS) (*Store, error) {
	s := &Store{byKey: make(map[string]map[string]string)}

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var table map[string]map[string]string
		if err := yaml.Unmarshal(data, &table); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		for key, names := range table {
			if key == "" {
				return fmt.Errorf("%w: %q contains an empty holiday key", ErrInvalidFile, filePath)
			}
			dst, ok := s.byKey[key]
			if !ok {
				dst = make(map[string]string, len(names))
				s.byKey[key] = dst
			}
			for tag, name := range names {
				tag = canonical(tag)
				if _, exists := dst[tag]; !exists {
					dst[tag] = name
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the Store built from the embedded translation data.
// The embedded files are validated at build time by the package tests, so a
// parse failure here is a programming error.
func Default() *Store {
	defaultOnce.Do(func() {
		s, err := Load(dataFS)
		if err != nil {
			panic(fmt.Sprintf("translations: embedded data: %v", err))
		}
		defaultStore = s
	})
	return defaultStore
}

// GetTranslations returns the locale/name table for a holiday key, or nil
// when the key has no global translations. The returned map is a copy.
func (s *Store) GetTranslations(key string) map[string]string {
	names, ok := s.byKey[key]
	if !ok {
		return nil
	}
	return maps.Clone(names)
}

// Keys returns the number of holiday keys in the store.
func (s *Store) Keys() int {
	return len(s.byKey)
}

// canonical rewrites a tag to underscore form so that data files may use
// either separator.
func canonical(tag string) string {
	return strings.ReplaceAll(strings.TrimSpace(tag), "-", "_")
}
