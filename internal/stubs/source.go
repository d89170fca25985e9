package stubs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/output"
)

// OriginEmbedded is the origin reported for the built-in stub set.
const OriginEmbedded = "embedded"

// ProjectStubsDir is the conventional stub directory relative to a project root.
const ProjectStubsDir = "resources/stubs"

// Source reads stub files from a directory or from the embedded defaults.
type Source struct {
	fsys   fs.FS
	origin string
}

// Embedded returns a Source backed by the built-in stubs.
func Embedded() *Source {
	sub, err := fs.Sub(defaultsFS, defaultsRoot)
	if err != nil {
		// defaultsRoot is a compile-time embed path.
		panic(err)
	}
	return &Source{fsys: sub, origin: OriginEmbedded}
}

// Dir returns a Source backed by a directory on disk. The directory must exist.
func Dir(dir string) (*Source, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, oerrors.NewNotFoundError(
			dir,
			fmt.Sprintf("stub directory not found: %s", dir),
			"Run 'modforge stubs publish' to create it, or unset stubsDir to use the built-in stubs.",
		)
	}
	if err != nil {
		return nil, fmt.Errorf("checking stub directory: %w", err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError("stubsDir",
			fmt.Sprintf("stub directory %s is not a directory", dir),
			"Point --stubs-dir at a directory of .stub files.")
	}
	return &Source{fsys: os.DirFS(dir), origin: dir}, nil
}

// FromFS returns a Source backed by fsys. Used by tests and embedders.
func FromFS(fsys fs.FS, origin string) *Source {
	return &Source{fsys: fsys, origin: origin}
}

// Resolve picks the stub source for a project.
//
// An explicit directory wins and must exist. Otherwise
// <basePath>/resources/stubs is used when present, else the embedded set.
func Resolve(explicitDir, basePath string) (*Source, error) {
	if explicitDir != "" {
		if !filepath.IsAbs(explicitDir) {
			explicitDir = filepath.Join(basePath, explicitDir)
		}
		return Dir(explicitDir)
	}

	projectDir := filepath.Join(basePath, ProjectStubsDir)
	if info, err := os.Stat(projectDir); err == nil && info.IsDir() {
		output.Debug("using project stubs", "dir", projectDir)
		return Dir(projectDir)
	}

	output.Debug("using built-in stubs")
	return Embedded(), nil
}

// Origin returns the directory the stubs come from, or "embedded".
func (s *Source) Origin() string {
	return s.origin
}

// Read returns the raw content of the named stub.
func (s *Source) Read(name string) ([]byte, error) {
	content, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, oerrors.NewNotFoundError(
			filepath.Join(s.origin, name),
			fmt.Sprintf("stub %s not found", name),
			"Run 'modforge stubs publish' to restore the default stubs.",
		)
	}
	if err != nil {
		return nil, fmt.Errorf("reading stub %s: %w", name, err)
	}
	return content, nil
}

// RenderStub reads the named stub and renders it with tokens.
func (s *Source) RenderStub(name string, tokens Tokens) ([]byte, error) {
	content, err := s.Read(name)
	if err != nil {
		return nil, err
	}
	return Render(content, tokens), nil
}

// Has reports whether the named stub exists in the source.
func (s *Source) Has(name string) bool {
	_, err := fs.Stat(s.fsys, name)
	return err == nil
}
