package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/IKAMTeam/sql-formatter-1/pkg/config"
	"github.com/IKAMTeam/sql-formatter-1/pkg/consts"
	"github.com/pkg/errors"
)

// source is one input of the fmt command: a file path or standard input.
type source struct {
	path  string
	stdin bool
}

func (s source) name() string {
	if s.stdin {
		return "<standard input>"
	}

	return s.path
}

// collectSources expands the command line paths into the list of inputs.
// Files named explicitly are always included; directories contribute files
// matching the configured extensions in lexical order.
func collectSources(cfg *config.Config, paths []string) ([]source, error) {
	var (
		sources []source
		stdin   bool
	)

	for _, path := range paths {
		if path == consts.StdinPath {
			// The cli parser already folds adjacent "-" arguments.
			if stdin {
				return nil, errors.New("standard input can only be given once")
			}

			stdin = true
			sources = append(sources, source{stdin: true})
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			sources = append(sources, source{path: path})
			continue
		}

		files, err := findFiles(cfg, path)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			sources = append(sources, source{path: file})
		}
	}

	return sources, nil
}

func findFiles(cfg *config.Config, dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if cfg.Matches(path) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", dir)
	}

	return files, nil
}

func hasStdin(sources []source) bool {
	for _, s := range sources {
		if s.stdin {
			return true
		}
	}

	return false
}
