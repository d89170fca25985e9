package stubs

import (
	"sort"
	"strings"
)

// Placeholder tokens recognised in stubs.
const (
	TokenNamespace      = "DummyNamespace"
	TokenRootNamespace  = "DummyRootNamespace"
	TokenClass          = "DummyClass"
	TokenFullModelClass = "DummyFullModelClass"
	TokenModelClass     = "DummyModelClass"
	TokenModelVariable  = "DummyModelVariable"
	TokenRoutePrefix    = "DummyRoutePrefix"
	TokenTable          = "DummyTable"
)

// Tokens maps placeholder tokens to their replacement values.
type Tokens map[string]string

// Render replaces every token in content with its value in a single pass.
// Longer tokens are matched first so no token shadows another it prefixes.
func Render(content []byte, tokens Tokens) []byte {
	if len(tokens) == 0 {
		return content
	}

	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, tokens[k])
	}

	return []byte(strings.NewReplacer(pairs...).Replace(string(content)))
}
