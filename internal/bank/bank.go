// Package bank loads local question bank files.
package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nvoloshin/prepterm/internal/question"
)

// Path builds the bank file path for an interview type.
func Path(dir, typeName string) string {
	return filepath.Join(dir, typeName+".json")
}

// Load reads one bank file: a JSON array in the loose question shape.
func Load(path string) ([]question.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raws []question.Raw
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("failed to decode question bank: %w", err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	return raws, nil
}

// LoadForType loads the bank for an interview type. A missing file is not an
// error; it returns nil so the caller can fall through to the next source.
func LoadForType(dir, typeName string) ([]question.Raw, error) {
	raws, err := Load(Path(dir, typeName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return raws, nil
}

// List returns the interview type names with a local bank file.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read bank directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(names)
	return names, nil
}
