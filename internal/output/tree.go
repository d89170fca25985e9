package output

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/ddddddO/gtree"
)

// RenderFileTree renders relative file paths as a tree rooted at rootName.
// Files maps each slash or OS separated path to an optional annotation that is
// printed after the file name.
func RenderFileTree(rootName string, files map[string]string) (string, error) {
	if len(files) == 0 {
		return "", nil
	}

	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	root := gtree.NewRoot(rootName)
	for _, p := range paths {
		parts := strings.Split(filepath.ToSlash(p), "/")
		node := root
		for i, part := range parts {
			if i == len(parts)-1 {
				if note := files[p]; note != "" {
					part += "  " + StyleDim.Render("("+note+")")
				}
			} else {
				part += "/"
			}
			node = node.Add(part)
		}
	}

	var sb strings.Builder
	if err := gtree.OutputFromRoot(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}
