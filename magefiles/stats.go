package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// skipDirs are not counted by Stats.
var skipDirs = map[string]bool{
	".git":      true,
	"vendor":    true,
	"_examples": true,
	"magefiles": true,
	binaryDir:   true,
}

// pkgStats holds line counts for one package directory.
type pkgStats struct {
	Dir  string `json:"dir"`
	Prod int    `json:"prod"`
	Test int    `json:"test"`
}

// Stats prints non-blank Go line counts per package, one JSON object per line.
func Stats() error {
	byDir := map[string]*pkgStats{}

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[path] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		n, err := nonBlankLines(path)
		if err != nil {
			return fmt.Errorf("count %s: %w", path, err)
		}
		dir := filepath.Dir(path)
		ps, ok := byDir[dir]
		if !ok {
			ps = &pkgStats{Dir: dir}
			byDir[dir] = ps
		}
		if strings.HasSuffix(path, "_test.go") {
			ps.Test += n
		} else {
			ps.Prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	enc := json.NewEncoder(os.Stdout)
	for _, dir := range dirs {
		if err := enc.Encode(byDir[dir]); err != nil {
			return err
		}
	}
	return nil
}

func nonBlankLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n, nil
}
