package scaffold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Artifacts(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want []Artifact
	}{
		{
			name: "nothing",
			sel:  Selection{},
			want: nil,
		},
		{
			name: "model only",
			sel:  Selection{Model: true},
			want: []Artifact{ArtifactModel},
		},
		{
			name: "controller brings web routes",
			sel:  Selection{Controller: true},
			want: []Artifact{ArtifactController, ArtifactWebRoutes},
		},
		{
			name: "api brings api routes",
			sel:  Selection{API: true},
			want: []Artifact{ArtifactAPIController, ArtifactAPIRoutes},
		},
		{
			name: "order follows generation order",
			sel:  Selection{View: true, Migration: true, Model: true},
			want: []Artifact{ArtifactModel, ArtifactMigration, ArtifactView},
		},
		{
			name: "all",
			sel:  SelectAll(),
			want: []Artifact{
				ArtifactModel,
				ArtifactController, ArtifactWebRoutes,
				ArtifactAPIController, ArtifactAPIRoutes,
				ArtifactMigration, ArtifactVue, ArtifactView,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Artifacts())
			assert.Equal(t, len(tt.want) == 0, tt.sel.Empty())
		})
	}
}

func TestSelection_AllIsUnionOfFlags(t *testing.T) {
	union := Selection{Model: true, Controller: true, API: true, Migration: true, Vue: true, View: true}
	assert.Equal(t, union.Artifacts(), SelectAll().Artifacts())

	// Combining All with individual flags adds nothing.
	mixed := Selection{All: true, Model: true, Vue: true}
	assert.Equal(t, union.Artifacts(), mixed.Artifacts())

	seen := map[Artifact]bool{}
	for _, a := range mixed.Artifacts() {
		assert.False(t, seen[a], "duplicate artifact %s", a)
		seen[a] = true
	}
}

func TestArtifact_Label(t *testing.T) {
	assert.Equal(t, "Api Controller", ArtifactAPIController.Label())
	assert.Equal(t, "Vue Component", ArtifactVue.Label())
	assert.Equal(t, "unknown", Artifact("unknown").Label())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Controller created successfully.", message(ArtifactController, StatusCreated, nil))
	assert.Equal(t, "Web Routes already exists!", message(ArtifactWebRoutes, StatusExists, nil))
	assert.Equal(t, "View will be created.", message(ArtifactView, StatusPlanned, nil))
	assert.Equal(t, "boom", message(ArtifactModel, StatusFailed, errors.New("boom")))
}

func TestReport_Count(t *testing.T) {
	r := &Report{}
	r.add(Result{Artifact: ArtifactModel, Path: "a", Status: StatusCreated})
	r.add(Result{Artifact: ArtifactController, Path: "b", Status: StatusExists})
	r.add(Result{Artifact: ArtifactWebRoutes, Path: "c", Status: StatusCreated})

	assert.Equal(t, 2, r.Count(StatusCreated))
	assert.Equal(t, 1, r.Count(StatusExists))
	assert.False(t, r.HasFailures())
	assert.Equal(t, map[string]Status{"a": StatusCreated, "b": StatusExists, "c": StatusCreated}, r.Paths())
}
