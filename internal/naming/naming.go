// Package naming parses module names and derives the identifiers used by the
// scaffold generators.
package naming

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/textcase"
)

// segmentRegex matches a single module path segment.
var segmentRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Module is a parsed module name such as "Blog/Posts".
type Module struct {
	// Segments are the path segments in order, kept verbatim.
	Segments []string
}

// Parse validates raw and splits it into segments.
// Both "/" and "\" separate segments.
func Parse(raw string) (Module, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Module{}, oerrors.NewValidationError(
			"name",
			"module name cannot be empty",
			`Pass a module name such as "Posts" or "Blog/Posts".`,
		)
	}

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	// FieldsFunc drops empty fields; compare the separator count to catch them.
	seps := strings.Count(trimmed, "/") + strings.Count(trimmed, `\`)
	if len(parts) != seps+1 {
		return Module{}, oerrors.NewValidationError(
			"name",
			fmt.Sprintf("invalid module name %q: empty path segment", raw),
			"Remove leading, trailing or doubled separators.",
		)
	}

	for _, p := range parts {
		if !segmentRegex.MatchString(p) {
			return Module{}, oerrors.NewValidationError(
				"name",
				fmt.Sprintf("invalid module name %q: bad segment %q", raw, p),
				"Start each segment with a letter and use only letters, digits, '-' or '_'.",
			)
		}
	}

	return Module{Segments: parts}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(raw string) Module {
	m, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the module name with "/" separators.
func (m Module) String() string {
	return strings.Join(m.Segments, "/")
}

// Path returns the module name as a slash path for filesystem use.
func (m Module) Path() string {
	return path.Join(m.Segments...)
}

// Namespace returns the module segments joined with PHP namespace separators.
func (m Module) Namespace() string {
	return strings.Join(m.Segments, `\`)
}

// Base returns the last segment.
func (m Module) Base() string {
	if len(m.Segments) == 0 {
		return ""
	}
	return m.Segments[len(m.Segments)-1]
}

// Names holds every identifier derived from a module name.
type Names struct {
	// Base is the last module segment as given ("Posts").
	Base string

	// ControllerBase is the studly form of Base ("Posts").
	ControllerBase string

	// ClassName is the studly singular form of Base ("Post").
	ClassName string

	// TableName is the snake plural form of ClassName ("posts").
	TableName string

	// RouteSegment is the kebab plural form of ClassName ("posts").
	RouteSegment string

	// VariableName is the lowerCamel singular form of Base ("post").
	VariableName string

	// Namespace is the module path with "\" separators ("Blog\Posts").
	Namespace string
}

// Derive computes Names for m.
func Derive(m Module) Names {
	base := m.Base()
	controller := textcase.Studly(base)
	class := textcase.Singular(controller)
	variable := textcase.LcFirst(class)

	return Names{
		Base:           base,
		ControllerBase: controller,
		ClassName:      class,
		TableName:      textcase.Plural(textcase.Snake(class)),
		RouteSegment:   textcase.Plural(textcase.Kebab(class)),
		VariableName:   variable,
		Namespace:      m.Namespace(),
	}
}

// ControllerClass returns the controller class name ("PostsController").
func (n Names) ControllerClass() string {
	return n.ControllerBase + "Controller"
}

// MigrationClass returns the migration class name ("CreatePostsTable").
func (n Names) MigrationClass() string {
	return "Create" + textcase.Studly(n.TableName) + "Table"
}

// MigrationName returns the migration file stem without timestamp
// ("create_posts_table").
func (n Names) MigrationName() string {
	return "create_" + n.TableName + "_table"
}
