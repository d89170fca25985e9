// Package stubs provides the stub templates used by the scaffold generators:
// the embedded default set, stub directory resolution, token rendering and
// publishing of the defaults into a project.
package stubs

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed defaults/*.stub
var defaultsFS embed.FS

// defaultsRoot is the directory inside defaultsFS holding the stub files.
const defaultsRoot = "defaults"

// Stub names.
const (
	Model         = "model.stub"
	Controller    = "controller.stub"
	APIController = "controller.model.api.stub"
	Migration     = "migration.create.stub"
	VueComponent  = "vue.component.stub"
	View          = "view.stub"
	WebRoutes     = "routes.web.stub"
	APIRoutes     = "routes.api.stub"
)

// Stub describes a known stub template.
type Stub struct {
	// Name is the stub file name (e.g., "model.stub").
	Name string

	// Description explains what the stub generates.
	Description string

	// Tokens lists the placeholder tokens the stub is rendered with.
	Tokens []string
}

// registry is the internal registry of known stubs.
var registry = map[string]Stub{
	Model: {
		Name:        Model,
		Description: "Eloquent model class",
		Tokens:      []string{TokenNamespace, TokenClass, TokenTable},
	},
	Controller: {
		Name:        Controller,
		Description: "Resource controller",
		Tokens:      []string{TokenNamespace, TokenRootNamespace, TokenClass},
	},
	APIController: {
		Name:        APIController,
		Description: "API resource controller bound to the model",
		Tokens: []string{
			TokenNamespace, TokenRootNamespace, TokenClass,
			TokenFullModelClass, TokenModelClass, TokenModelVariable,
		},
	},
	Migration: {
		Name:        Migration,
		Description: "Create-table migration",
		Tokens:      []string{TokenClass, TokenTable},
	},
	VueComponent: {
		Name:        VueComponent,
		Description: "Vue single-file component",
		Tokens:      []string{TokenClass},
	},
	View: {
		Name:        View,
		Description: "Blade view (create, edit, index, show)",
	},
	WebRoutes: {
		Name:        WebRoutes,
		Description: "Web route file for the module",
		Tokens:      []string{TokenClass, TokenRoutePrefix, TokenModelVariable},
	},
	APIRoutes: {
		Name:        APIRoutes,
		Description: "API route file for the module",
		Tokens:      []string{TokenClass, TokenRoutePrefix, TokenModelVariable},
	},
}

// Get returns a stub by name.
func Get(name string) (Stub, error) {
	s, ok := registry[name]
	if !ok {
		return Stub{}, fmt.Errorf("unknown stub %q", name)
	}
	return s, nil
}

// List returns all known stubs sorted by name.
func List() []Stub {
	out := make([]Stub, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns all known stub names sorted.
func Names() []string {
	list := List()
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.Name
	}
	return names
}
