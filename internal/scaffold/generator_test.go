package scaffold

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/naming"
	"github.com/modforge/cli/internal/stubs"
	"github.com/modforge/cli/internal/testutil"
)

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestGenerator(t *testing.T, base string, mutate ...func(*Options)) *Generator {
	t.Helper()
	opts := validOptions()
	opts.BasePath = base
	opts.Now = func() time.Time { return fixedNow }
	for _, m := range mutate {
		m(&opts)
	}
	g, err := NewGenerator(opts)
	require.NoError(t, err)
	return g
}

func readFile(t *testing.T, base, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func statuses(r *Report) []Status {
	out := make([]Status, 0, len(r.Results))
	for _, res := range r.Results {
		out = append(out, res.Status)
	}
	return out
}

func TestGenerate_ModelAndController(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base)

	report, err := g.Generate(context.Background(), naming.MustParse("Blog/Posts"), Selection{Model: true, Controller: true})
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	assert.Equal(t, "app/Modules/Blog/Posts/Models/Post.php", report.Results[0].Path)
	assert.Equal(t, "app/Modules/Blog/Posts/Controllers/PostsController.php", report.Results[1].Path)
	assert.Equal(t, "app/Modules/Blog/Posts/Routes/web.php", report.Results[2].Path)
	assert.Equal(t, []Status{StatusCreated, StatusCreated, StatusCreated}, statuses(report))
	assert.Equal(t, "Model created successfully.", report.Results[0].Message)
	assert.Equal(t, "Web Routes created successfully.", report.Results[2].Message)

	model := readFile(t, base, report.Results[0].Path)
	assert.Contains(t, model, `namespace App\Modules\Blog\Posts\Models;`)
	assert.Contains(t, model, "class Post extends Model")
	assert.Contains(t, model, "protected $table = 'posts';")

	controller := readFile(t, base, report.Results[1].Path)
	assert.Contains(t, controller, `namespace App\Modules\Blog\Posts\Controllers;`)
	assert.Contains(t, controller, `use App\Http\Controllers\Controller;`)
	assert.Contains(t, controller, "class PostsController extends Controller")

	routes := readFile(t, base, report.Results[2].Path)
	assert.Contains(t, routes, "Route::resource('posts', 'PostsController')")
	assert.Contains(t, routes, "'posts' => 'post'")
}

func TestGenerate_AcronymModuleSharesRoot(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base)

	report, err := g.Generate(context.Background(), naming.MustParse("Billing/APIKeys"),
		Selection{Model: true, Controller: true, Migration: true})
	require.NoError(t, err)

	paths := make([]string, 0, len(report.Results))
	for _, res := range report.Results {
		paths = append(paths, res.Path)
	}
	assert.Equal(t, []string{
		"app/Modules/Billing/APIKeys/Models/APIKey.php",
		"app/Modules/Billing/APIKeys/Controllers/APIKeysController.php",
		"app/Modules/Billing/APIKeys/Routes/web.php",
		"app/Modules/Billing/APIKeys/Migrations/2024_01_02_030405_create_api_keys_table.php",
	}, paths)

	assert.Contains(t, readFile(t, base, paths[0]), "protected $table = 'api_keys';")
	routes := readFile(t, base, paths[2])
	assert.Contains(t, routes, "Route::resource('api-keys', 'APIKeysController')")
	assert.Contains(t, routes, "'api-keys' => 'aPIKey'")
	assert.Contains(t, readFile(t, base, paths[3]), "Schema::create('api_keys'")
}

func TestGenerate_FailedWriteLeavesNoFile(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base)
	m := naming.MustParse("Posts")

	orig := writeContent
	t.Cleanup(func() { writeContent = orig })
	writeContent = func(io.Writer, []byte) error { return errors.New("disk full") }

	report, err := g.Generate(context.Background(), m, Selection{Model: true})
	require.Error(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, StatusFailed, report.Results[0].Status)

	model := filepath.Join(base, "app", "Modules", "Posts", "Models", "Post.php")
	assert.NoFileExists(t, model)

	writeContent = orig
	report, err = g.Generate(context.Background(), m, Selection{Model: true})
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, report.Results[0].Status)
	assert.FileExists(t, model)
}

func TestGenerate_IsWriteOnce(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base)
	m := naming.MustParse("Posts")
	sel := Selection{Model: true, Controller: true}

	_, err := g.Generate(context.Background(), m, sel)
	require.NoError(t, err)

	modelPath := "app/Modules/Posts/Models/Post.php"
	require.NoError(t, os.WriteFile(filepath.Join(base, modelPath), []byte("edited"), 0o644))

	report, err := g.Generate(context.Background(), m, sel)
	require.NoError(t, err)

	assert.Equal(t, []Status{StatusExists, StatusExists, StatusExists}, statuses(report))
	assert.Equal(t, "Model already exists!", report.Results[0].Message)
	assert.Equal(t, "Controller already exists!", report.Results[1].Message)
	assert.Equal(t, "edited", readFile(t, base, modelPath))
}

func TestGenerate_RoutesFollowSkippedController(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base)

	controller := filepath.Join(base, "app", "Modules", "Posts", "Controllers", "Api", "PostsController.php")
	require.NoError(t, os.MkdirAll(filepath.Dir(controller), 0o755))
	require.NoError(t, os.WriteFile(controller, []byte("<?php // mine"), 0o644))

	report, err := g.Generate(context.Background(), naming.MustParse("Posts"), Selection{API: true})
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, StatusExists, report.Results[0].Status)
	assert.Equal(t, "Api Controller already exists!", report.Results[0].Message)
	assert.Equal(t, StatusCreated, report.Results[1].Status)

	routes := readFile(t, base, report.Results[1].Path)
	assert.Contains(t, routes, `Route::apiResource('posts', 'Api\PostsController')`)
	assert.Contains(t, routes, "'posts' => 'post'")
}

func TestGenerate_APIController(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base)

	report, err := g.Generate(context.Background(), naming.MustParse("Shop/OrderItems"), Selection{API: true})
	require.NoError(t, err)

	content := readFile(t, base, "app/Modules/Shop/OrderItems/Controllers/Api/OrderItemsController.php")
	assert.Contains(t, content, `namespace App\Modules\Shop\OrderItems\Controllers\Api;`)
	assert.Contains(t, content, `use App\Modules\Shop\OrderItems\Models\OrderItem;`)
	assert.Contains(t, content, "class OrderItemsController extends Controller")
	assert.Contains(t, content, "public function show(OrderItem $orderItem)")

	routes := readFile(t, base, report.Results[1].Path)
	assert.Contains(t, routes, `Route::apiResource('order-items', 'Api\OrderItemsController')`)
	assert.Contains(t, routes, "'order-items' => 'orderItem'")
}

func TestGenerate_All(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base)

	report, err := g.Generate(context.Background(), naming.MustParse("Blog/Posts"), SelectAll())
	require.NoError(t, err)

	want := []string{
		"app/Modules/Blog/Posts/Models/Post.php",
		"app/Modules/Blog/Posts/Controllers/PostsController.php",
		"app/Modules/Blog/Posts/Routes/web.php",
		"app/Modules/Blog/Posts/Controllers/Api/PostsController.php",
		"app/Modules/Blog/Posts/Routes/api.php",
		"app/Modules/Blog/Posts/Migrations/2024_01_02_030405_create_posts_table.php",
		"resources/js/components/Blog/Posts.vue",
		"resources/views/Blog/Posts/create.blade.php",
		"resources/views/Blog/Posts/edit.blade.php",
		"resources/views/Blog/Posts/index.blade.php",
		"resources/views/Blog/Posts/show.blade.php",
	}

	got := make([]string, 0, len(report.Results))
	for _, res := range report.Results {
		got = append(got, res.Path)
		assert.Equal(t, StatusCreated, res.Status, res.Path)
		assert.NotContains(t, readFile(t, base, res.Path), "Dummy", res.Path)
	}
	assert.Equal(t, want, got)

	migration := readFile(t, base, want[5])
	assert.Contains(t, migration, "class CreatePostsTable extends Migration")
	assert.Contains(t, migration, "Schema::create('posts'")

	vue := readFile(t, base, want[6])
	assert.Contains(t, vue, "name: 'Posts'")
}

func TestGenerate_MigrationDetectsExisting(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base)
	m := naming.MustParse("Posts")

	_, err := g.Generate(context.Background(), m, Selection{Migration: true})
	require.NoError(t, err)

	later := newTestGenerator(t, base, func(o *Options) {
		o.Now = func() time.Time { return fixedNow.Add(48 * time.Hour) }
	})
	report, err := later.Generate(context.Background(), m, Selection{Migration: true})
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	assert.Equal(t, StatusExists, report.Results[0].Status)
	assert.Equal(t, "app/Modules/Posts/Migrations/2024_01_02_030405_create_posts_table.php", report.Results[0].Path)

	entries, err := os.ReadDir(filepath.Join(base, "app", "Modules", "Posts", "Migrations"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGenerate_MigrationFailureContinues(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base)

	// A file where the Migrations directory should be.
	migrations := filepath.Join(base, "app", "Modules", "Posts", "Migrations")
	require.NoError(t, os.MkdirAll(filepath.Dir(migrations), 0o755))
	require.NoError(t, os.WriteFile(migrations, []byte("not a dir"), 0o644))

	report, err := g.Generate(context.Background(), naming.MustParse("Posts"), Selection{Migration: true, Vue: true})
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, StatusFailed, report.Results[0].Status)
	assert.Error(t, report.Results[0].Err)
	assert.Equal(t, StatusCreated, report.Results[1].Status)
	assert.True(t, report.HasFailures())
}

func TestGenerate_MissingStubStopsRun(t *testing.T) {
	base := t.TempDir()
	embedded, err := stubs.Embedded().Read(stubs.Model)
	require.NoError(t, err)

	g := newTestGenerator(t, base, func(o *Options) {
		o.Stubs = stubs.FromFS(fstest.MapFS{
			stubs.Model: &fstest.MapFile{Data: embedded},
		}, "test")
	})

	report, err := g.Generate(context.Background(), naming.MustParse("Posts"), Selection{Model: true, Controller: true, Vue: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	require.Len(t, report.Results, 2)
	assert.Equal(t, StatusCreated, report.Results[0].Status)
	assert.Equal(t, StatusFailed, report.Results[1].Status)

	// Completed artifacts stay, nothing after the failure is written.
	assert.FileExists(t, filepath.Join(base, "app", "Modules", "Posts", "Models", "Post.php"))
	assert.NoFileExists(t, filepath.Join(base, "app", "Modules", "Posts", "Controllers", "PostsController.php"))
	assert.NoDirExists(t, filepath.Join(base, "resources"))
}

func TestGenerate_DryRun(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base, func(o *Options) { o.DryRun = true })

	report, err := g.Generate(context.Background(), naming.MustParse("Blog/Posts"), SelectAll())
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, len(report.Results), report.Count(StatusPlanned))

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_ContextCanceled(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := g.Generate(ctx, naming.MustParse("Posts"), SelectAll())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}

func TestGenerate_NoSelection(t *testing.T) {
	g := newTestGenerator(t, t.TempDir())

	_, err := g.Generate(context.Background(), naming.MustParse("Posts"), Selection{})
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestGenerate_CustomLayout(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(t, base, func(o *Options) {
		o.AppDir = "src"
		o.ModulesDir = "Features"
		o.RootNamespace = `Acme\`
	})

	report, err := g.Generate(context.Background(), naming.MustParse("Tags"), Selection{Model: true, Controller: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(report.Results[0].Path, "src/Features/Tags/"))
	assert.Contains(t, readFile(t, base, report.Results[0].Path), `namespace Acme\Features\Tags\Models;`)
	assert.Contains(t, readFile(t, base, report.Results[1].Path), `use Acme\Http\Controllers\Controller;`)
}

func TestGenerate_SecondRunLeavesTreeUnchanged(t *testing.T) {
	base := t.TempDir()
	testutil.WriteFiles(t, base, map[string]string{
		"resources/views/Posts/index.blade.php": "custom index",
	})
	g := newTestGenerator(t, base)
	m := naming.MustParse("Posts")

	first, err := g.Generate(context.Background(), m, SelectAll())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Count(StatusExists))
	before := testutil.ReadTree(t, base)
	assert.Equal(t, "custom index", before["resources/views/Posts/index.blade.php"])

	later := newTestGenerator(t, base, func(o *Options) {
		o.Now = func() time.Time { return fixedNow.Add(time.Hour) }
	})
	second, err := later.Generate(context.Background(), m, SelectAll())
	require.NoError(t, err)

	assert.Equal(t, len(second.Results), second.Count(StatusExists))
	assert.Equal(t, before, testutil.ReadTree(t, base))
}
