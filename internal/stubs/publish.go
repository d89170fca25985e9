package stubs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/modforge/cli/internal/output"
)

// PublishResult describes the outcome for one published stub.
type PublishResult struct {
	// Name is the stub file name.
	Name string

	// Path is the destination path.
	Path string

	// Skipped is true when the file already existed and force was not set.
	Skipped bool
}

// Publish copies the built-in stubs into dir so a project can customise them.
// Existing files are left untouched unless force is set.
func Publish(dir string, force bool) ([]PublishResult, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating stub directory %s: %w", dir, err)
	}

	src := Embedded()
	results := make([]PublishResult, 0, len(registry))

	for _, name := range Names() {
		target := filepath.Join(dir, name)

		if !force {
			if _, err := os.Stat(target); err == nil {
				output.Debug("stub exists, skipping", "path", target)
				results = append(results, PublishResult{Name: name, Path: target, Skipped: true})
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return results, fmt.Errorf("checking %s: %w", target, err)
			}
		}

		content, err := src.Read(name)
		if err != nil {
			return results, err
		}

		if err := os.WriteFile(target, content, 0o644); err != nil {
			return results, fmt.Errorf("writing %s: %w", target, err)
		}

		output.Debug("published stub", "path", target)
		results = append(results, PublishResult{Name: name, Path: target})
	}

	return results, nil
}
