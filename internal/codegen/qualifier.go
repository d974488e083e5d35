package codegen

import (
	"go/types"
	"slices"
	"strconv"
	"strings"
)

// qualifier tracks the imports referenced by rule expressions and resolves
// package name collisions with numbered aliases.
type qualifier struct {
	self   string
	byPath map[string]string
	byName map[string]string
}

func newQualifier(self string) *qualifier {
	return &qualifier{
		self:   self,
		byPath: make(map[string]string),
		byName: make(map[string]string),
	}
}

// use registers an import and returns the name to reference it by.
func (q *qualifier) use(path, name string) string {
	if n, ok := q.byPath[path]; ok {
		return n
	}

	alias := name
	for i := 2; ; i++ {
		if _, taken := q.byName[alias]; !taken {
			break
		}
		alias = name + strconv.Itoa(i)
	}

	q.byPath[path] = alias
	q.byName[alias] = path
	return alias
}

func (q *qualifier) qualify(p *types.Package) string {
	if p.Path() == q.self {
		return ""
	}
	return q.use(p.Path(), p.Name())
}

func (q *qualifier) typeString(t types.Type) string {
	return types.TypeString(t, q.qualify)
}

func (q *qualifier) imports() []Import {
	out := make([]Import, 0, len(q.byPath))
	for path, name := range q.byPath {
		out = append(out, Import{Name: name, Path: path})
	}
	slices.SortFunc(out, func(a, b Import) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}
