// Package scaffold generates the files of a module from stubs.
package scaffold

import (
	"github.com/modforge/cli/internal/naming"
)

// Artifact identifies one kind of generated file.
type Artifact string

// Artifact kinds, in generation order.
const (
	ArtifactModel         Artifact = "model"
	ArtifactController    Artifact = "controller"
	ArtifactWebRoutes     Artifact = "web-routes"
	ArtifactAPIController Artifact = "api-controller"
	ArtifactAPIRoutes     Artifact = "api-routes"
	ArtifactMigration     Artifact = "migration"
	ArtifactVue           Artifact = "vue"
	ArtifactView          Artifact = "view"
)

var artifactLabels = map[Artifact]string{
	ArtifactModel:         "Model",
	ArtifactController:    "Controller",
	ArtifactWebRoutes:     "Web Routes",
	ArtifactAPIController: "Api Controller",
	ArtifactAPIRoutes:     "Api Routes",
	ArtifactMigration:     "Migration",
	ArtifactVue:           "Vue Component",
	ArtifactView:          "View",
}

// Label returns the human-readable name used in result messages.
func (a Artifact) Label() string {
	if l, ok := artifactLabels[a]; ok {
		return l
	}
	return string(a)
}

// Selection holds the artifact flags of a generation run.
type Selection struct {
	Model      bool
	Controller bool
	API        bool
	Migration  bool
	Vue        bool
	View       bool
	// All turns every other flag on.
	All bool
}

// SelectAll returns a selection with every artifact enabled.
func SelectAll() Selection {
	return Selection{All: true}
}

// Expand returns s with All applied to the individual flags.
func (s Selection) Expand() Selection {
	if !s.All {
		return s
	}
	return Selection{
		Model:      true,
		Controller: true,
		API:        true,
		Migration:  true,
		Vue:        true,
		View:       true,
		All:        true,
	}
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s.Artifacts()) == 0
}

// Artifacts returns the selected artifacts in generation order, without
// duplicates. Route files follow the controller that triggers them.
func (s Selection) Artifacts() []Artifact {
	s = s.Expand()

	var out []Artifact
	if s.Model {
		out = append(out, ArtifactModel)
	}
	if s.Controller {
		out = append(out, ArtifactController, ArtifactWebRoutes)
	}
	if s.API {
		out = append(out, ArtifactAPIController, ArtifactAPIRoutes)
	}
	if s.Migration {
		out = append(out, ArtifactMigration)
	}
	if s.Vue {
		out = append(out, ArtifactVue)
	}
	if s.View {
		out = append(out, ArtifactView)
	}
	return out
}

// Status is the outcome of one generated file.
type Status string

const (
	// StatusCreated means the file was written by this run.
	StatusCreated Status = "created"
	// StatusExists means the destination was already present and left alone.
	StatusExists Status = "exists"
	// StatusPlanned means a dry run would have written the file.
	StatusPlanned Status = "planned"
	// StatusFailed means generating the file returned an error.
	StatusFailed Status = "failed"
)

// Result describes what happened to a single destination file.
type Result struct {
	Artifact Artifact

	// Path is the destination relative to the base path, slash separated.
	Path string

	Status Status

	// Message is the user-facing outcome, e.g. "Model created successfully."
	Message string

	// Err is set when Status is StatusFailed.
	Err error
}

// Report collects the results of a generation run in order.
type Report struct {
	Module  naming.Module
	Names   naming.Names
	DryRun  bool
	Results []Result
}

// Count returns the number of results with the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// HasFailures reports whether any result failed.
func (r *Report) HasFailures() bool {
	return r.Count(StatusFailed) > 0
}

// Paths returns every reported path mapped to its status.
func (r *Report) Paths() map[string]Status {
	out := make(map[string]Status, len(r.Results))
	for _, res := range r.Results {
		if res.Path != "" {
			out[res.Path] = res.Status
		}
	}
	return out
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
}

func message(a Artifact, status Status, err error) string {
	switch status {
	case StatusCreated:
		return a.Label() + " created successfully."
	case StatusExists:
		return a.Label() + " already exists!"
	case StatusPlanned:
		return a.Label() + " will be created."
	default:
		if err != nil {
			return err.Error()
		}
		return a.Label() + " failed."
	}
}
