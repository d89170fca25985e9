package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/naming"
	"github.com/modforge/cli/internal/output"
	"github.com/modforge/cli/internal/stubs"
)

// migrationTimestamp is the layout of the migration file name prefix.
const migrationTimestamp = "2006_01_02_150405"

// viewNames are the Blade views generated for a module.
var viewNames = []string{"create", "edit", "index", "show"}

// Generator writes module artifacts from stubs.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator after validating opts.
func NewGenerator(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Generator{opts: opts}, nil
}

// file is one destination with the stub and tokens that produce it.
type file struct {
	artifact Artifact
	path     string
	stub     string
	tokens   stubs.Tokens
}

// Generate runs the selected artifacts for module m in order.
//
// Existing destinations are reported and skipped. A failing migration is
// recorded and the run continues; any other failure stops the run and is
// returned together with the results so far. Files already written are kept.
func (g *Generator) Generate(ctx context.Context, m naming.Module, sel Selection) (*Report, error) {
	names := naming.Derive(m)
	report := &Report{Module: m, Names: names, DryRun: g.opts.DryRun}
	logger := output.ModuleLogger(m.String())

	artifacts := sel.Artifacts()
	if len(artifacts) == 0 {
		return report, oerrors.NewValidationError(
			"flags", "no artifacts selected",
			"Pass --all or at least one of --model, --controller, --api, --migration, --vue, --view.",
		)
	}

	logger.Debug("generating module",
		"artifacts", len(artifacts),
		"stubs", g.opts.Stubs.Origin(),
		"dry_run", g.opts.DryRun,
	)

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if a == ArtifactMigration {
			g.migration(m, names, report, logger)
			continue
		}

		for _, f := range g.files(a, m, names) {
			res := g.write(f)
			report.add(res)
			logger.Debug(res.Message, "path", res.Path, "status", res.Status)
			if res.Status == StatusFailed {
				return report, res.Err
			}
		}
	}

	return report, nil
}

// files returns the destinations produced by a non-migration artifact.
func (g *Generator) files(a Artifact, m naming.Module, n naming.Names) []file {
	root := g.opts.RootNamespace
	moduleNS := g.moduleNamespace(m)
	moduleDir := g.moduleDir(m)

	switch a {
	case ArtifactModel:
		return []file{{
			artifact: a,
			path:     path.Join(moduleDir, "Models", n.ClassName+".php"),
			stub:     stubs.Model,
			tokens: stubs.Tokens{
				stubs.TokenNamespace: moduleNS + `\Models`,
				stubs.TokenClass:     n.ClassName,
				stubs.TokenTable:     n.TableName,
			},
		}}
	case ArtifactController:
		return []file{{
			artifact: a,
			path:     path.Join(moduleDir, "Controllers", n.ControllerClass()+".php"),
			stub:     stubs.Controller,
			tokens: stubs.Tokens{
				stubs.TokenNamespace:     moduleNS + `\Controllers`,
				stubs.TokenRootNamespace: root,
				stubs.TokenClass:         n.ControllerClass(),
			},
		}}
	case ArtifactWebRoutes:
		return []file{{
			artifact: a,
			path:     path.Join(moduleDir, "Routes", "web.php"),
			stub:     stubs.WebRoutes,
			tokens:   routeTokens(n, n.ControllerClass()),
		}}
	case ArtifactAPIController:
		return []file{{
			artifact: a,
			path:     path.Join(moduleDir, "Controllers", "Api", n.ControllerClass()+".php"),
			stub:     stubs.APIController,
			tokens: stubs.Tokens{
				stubs.TokenNamespace:      moduleNS + `\Controllers\Api`,
				stubs.TokenRootNamespace:  root,
				stubs.TokenClass:          n.ControllerClass(),
				stubs.TokenFullModelClass: moduleNS + `\Models\` + n.ClassName,
				stubs.TokenModelClass:     n.ClassName,
				stubs.TokenModelVariable:  n.VariableName,
			},
		}}
	case ArtifactAPIRoutes:
		return []file{{
			artifact: a,
			path:     path.Join(moduleDir, "Routes", "api.php"),
			stub:     stubs.APIRoutes,
			tokens:   routeTokens(n, `Api\`+n.ControllerClass()),
		}}
	case ArtifactVue:
		return []file{{
			artifact: a,
			path:     path.Join(filepath.ToSlash(g.opts.ComponentsDir), m.Path()+".vue"),
			stub:     stubs.VueComponent,
			tokens:   stubs.Tokens{stubs.TokenClass: n.ControllerBase},
		}}
	case ArtifactView:
		views := make([]file, 0, len(viewNames))
		for _, v := range viewNames {
			views = append(views, file{
				artifact: a,
				path:     path.Join(filepath.ToSlash(g.opts.ViewsDir), m.Path(), v+".blade.php"),
				stub:     stubs.View,
			})
		}
		return views
	}
	return nil
}

func routeTokens(n naming.Names, controller string) stubs.Tokens {
	return stubs.Tokens{
		stubs.TokenClass:         controller,
		stubs.TokenRoutePrefix:   n.RouteSegment,
		stubs.TokenModelVariable: n.VariableName,
	}
}

// moduleDir is the module directory relative to the base path.
func (g *Generator) moduleDir(m naming.Module) string {
	return path.Join(filepath.ToSlash(g.opts.AppDir), g.opts.ModulesDir, m.Path())
}

// moduleNamespace is the PHP namespace of the module, e.g. App\Modules\Blog\Posts.
func (g *Generator) moduleNamespace(m naming.Module) string {
	return g.opts.RootNamespace + g.opts.ModulesDir + `\` + m.Namespace()
}

func (g *Generator) abs(rel string) string {
	return filepath.Join(g.opts.BasePath, filepath.FromSlash(rel))
}

// write renders f and creates its destination unless it already exists.
func (g *Generator) write(f file) Result {
	res := Result{Artifact: f.artifact, Path: f.path}
	finish := func(status Status, err error) Result {
		res.Status = status
		res.Err = err
		res.Message = message(f.artifact, status, err)
		return res
	}

	target := g.abs(f.path)

	exists, err := pathExists(target)
	if err != nil {
		return finish(StatusFailed, fsError(err, "checking", f.path))
	}
	if exists {
		return finish(StatusExists, nil)
	}

	content, err := g.opts.Stubs.RenderStub(f.stub, f.tokens)
	if err != nil {
		return finish(StatusFailed, err)
	}

	if g.opts.DryRun {
		return finish(StatusPlanned, nil)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return finish(StatusFailed, fsError(err, "creating directory for", f.path))
	}

	if err := writeExclusive(target, content); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return finish(StatusExists, nil)
		}
		return finish(StatusFailed, fsError(err, "writing", f.path))
	}

	return finish(StatusCreated, nil)
}

// migration generates the create-table migration. Failures are recorded in
// the report and never stop the run.
func (g *Generator) migration(m naming.Module, n naming.Names, report *Report, logger *log.Logger) {
	dir := path.Join(g.moduleDir(m), "Migrations")
	suffix := "_" + n.MigrationName() + ".php"

	existing, err := findMigration(g.abs(dir), suffix)
	if err != nil {
		err = fsError(err, "reading", dir)
		report.add(Result{
			Artifact: ArtifactMigration,
			Path:     dir,
			Status:   StatusFailed,
			Err:      err,
			Message:  message(ArtifactMigration, StatusFailed, err),
		})
		logger.Warn("migration failed", "err", err)
		return
	}

	if existing != "" {
		report.add(Result{
			Artifact: ArtifactMigration,
			Path:     path.Join(dir, existing),
			Status:   StatusExists,
			Message:  message(ArtifactMigration, StatusExists, nil),
		})
		return
	}

	name := g.opts.Now().Format(migrationTimestamp) + suffix
	res := g.write(file{
		artifact: ArtifactMigration,
		path:     path.Join(dir, name),
		stub:     stubs.Migration,
		tokens: stubs.Tokens{
			stubs.TokenClass: n.MigrationClass(),
			stubs.TokenTable: n.TableName,
		},
	})
	report.add(res)

	if res.Status == StatusFailed {
		logger.Warn("migration failed", "err", res.Err)
		return
	}
	logger.Debug(res.Message, "path", res.Path, "status", res.Status)
}

// findMigration returns the name of a file in dir ending in suffix, or "".
func findMigration(dir, suffix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			return e.Name(), nil
		}
	}
	return "", nil
}

func pathExists(p string) (bool, error) {
	_, err := os.Lstat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// writeContent writes rendered content to a newly created file.
var writeContent = func(w io.Writer, content []byte) error {
	_, err := w.Write(content)
	return err
}

// writeExclusive creates p and writes content, failing if p already exists.
// A file this call created is removed again if writing it fails, so a later
// run does not mistake a truncated file for an existing artifact.
func writeExclusive(p string, content []byte) error {
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	err = writeContent(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(p)
		return err
	}
	return nil
}

// fsError converts a filesystem error into a DetailError where one applies.
func fsError(err error, action, rel string) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(
			rel,
			fmt.Sprintf("%s %s: %v", action, rel, err),
			"Check the permissions of the project directory.",
		)
	}
	return fmt.Errorf("%s %s: %w", action, rel, err)
}
