package library

import (
	"fmt"
	"io"
	"sort"

	"github.com/xlab/treeprint"
)

// Dump writes the reverse trie of the library to w, for debugging purposes.
// Links are printed with the number of rules they hold as meta data.
func (lib *Library) Dump(w io.Writer) error {
	tree := treeprint.New()
	top := tree.AddBranch(fmt.Sprintf("library (%d rules)", lib.active))
	for _, name := range sortedKeys(lib.roots) {
		lib.dumpLink(top, name, lib.roots[name])
	}
	_, err := io.WriteString(w, tree.String())
	return err
}

func (lib *Library) dumpLink(tree treeprint.Tree, name string, lid linkID) {
	l := &lib.links[lid]
	var branch treeprint.Tree
	if len(l.rules) > 0 {
		branch = tree.AddMetaBranch(len(l.rules), name)
	} else {
		branch = tree.AddBranch(name)
	}
	for _, pname := range sortedKeys(l.parents) {
		lib.dumpLink(branch, pname, l.parents[pname])
	}
}

func sortedKeys(m map[string]linkID) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
