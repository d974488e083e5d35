package codegen

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"
	"strings"
	"time"

	"golang.org/x/tools/go/packages"

	"github.com/dmitrymomot/typedmultipart/core/decoder"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Errors reported for record declarations that cannot be generated.
var (
	ErrTypeNotFound  = errors.New("type not found")
	ErrNotStruct     = errors.New("can only be applied to a struct")
	ErrGeneric       = errors.New("does not work for generic types")
	ErrEmbeddedField = errors.New("does not work for embedded fields")
	ErrNoRule        = errors.New("no conversion rule")
)

// Analyzer loads Go packages and turns record declarations into File values.
type Analyzer struct {
	buildTags  []string
	timeLayout string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithBuildTags sets the build tags used when loading packages.
func WithBuildTags(tags ...string) Option {
	return func(a *Analyzer) {
		for _, t := range tags {
			if t = strings.TrimSpace(t); t != "" {
				a.buildTags = append(a.buildTags, t)
			}
		}
	}
}

// WithTimeLayout sets the layout of time.Time fields. Defaults to time.RFC3339,
// matching part.Default.
func WithTimeLayout(layout string) Option {
	return func(a *Analyzer) {
		if layout != "" {
			a.timeLayout = layout
		}
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{timeLayout: time.RFC3339}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load loads the packages matching patterns, relative to dir. An empty dir
// means the current directory; no patterns means ".".
func (a *Analyzer) Load(dir string, patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}
	if len(a.buildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.buildTags, ",")}
	}
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	return pkgs, nil
}

// Record analyses the type called name in pkg.
func (a *Analyzer) Record(pkg *packages.Package, name string) (Record, error) {
	return a.record(pkg, name, newQualifier(pkg.PkgPath))
}

// File analyses the named records of pkg and collects the imports their rule
// expressions need.
func (a *Analyzer) File(pkg *packages.Package, names ...string) (File, error) {
	q := newQualifier(pkg.PkgPath)
	q.use(partmapPath, "partmap")

	f := File{Package: pkg.Name}
	for _, name := range names {
		rec, err := a.record(pkg, name, q)
		if err != nil {
			return File{}, err
		}
		f.Records = append(f.Records, rec)
	}
	f.Imports = q.imports()

	return f, nil
}

func (a *Analyzer) record(pkg *packages.Package, name string, q *qualifier) (Record, error) {
	obj := pkg.Types.Scope().Lookup(name)
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return Record{}, fmt.Errorf("%w: %s in package %s", ErrTypeNotFound, name, pkg.PkgPath)
	}

	if n, ok := tn.Type().(*types.Named); ok && n.TypeParams().Len() > 0 {
		return Record{}, fmt.Errorf("%s: %w", name, ErrGeneric)
	}
	st, ok := tn.Type().Underlying().(*types.Struct)
	if !ok {
		return Record{}, fmt.Errorf("%s: %w", name, ErrNotStruct)
	}

	rec := Record{Name: name}
	for i := range st.NumFields() {
		f := st.Field(i)

		tag := decoder.ParseTag(f.Name(), reflect.StructTag(st.Tag(i)))
		if tag.Ignore {
			continue
		}
		if f.Embedded() {
			return Record{}, fmt.Errorf("%s.%s: %w", name, f.Name(), ErrEmbeddedField)
		}
		// Unexported fields are skipped like in the reflective schema
		if !f.Exported() {
			continue
		}

		expr, err := a.ruleFor(f.Type(), tag, q)
		if err != nil {
			return Record{}, fmt.Errorf("%s.%s: %w", name, f.Name(), err)
		}

		rec.Fields = append(rec.Fields, Field{
			Name: f.Name(),
			Key:  tag.Key,
			Type: types.TypeString(f.Type(), relativeName(pkg.Types)),
			Rule: expr,
		})
	}

	return rec, nil
}

// relativeName qualifies types of other packages by package name.
func relativeName(self *types.Package) types.Qualifier {
	return func(p *types.Package) string {
		if p == self {
			return ""
		}
		return p.Name()
	}
}
