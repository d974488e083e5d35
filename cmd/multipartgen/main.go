// Command multipartgen generates DecodeMultipart methods for record types.
//
// Usage:
//
//	multipartgen -type CreatePost,Attachment [-output file] [-tags a,b] [-config multipartgen.yaml] [-debug] [packages]
//
// It is meant to run under go:generate:
//
//	//go:generate go run github.com/dmitrymomot/typedmultipart/cmd/multipartgen -type CreatePost
//
// The output defaults to <file>_multipart.go next to the file holding the
// directive. Defaults can also be set with MULTIPARTGEN_OUTPUT,
// MULTIPARTGEN_TAGS, MULTIPARTGEN_CONFIG and MULTIPARTGEN_LOG_LEVEL.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/dmitrymomot/typedmultipart/core/config"
	"github.com/dmitrymomot/typedmultipart/core/logger"
	"github.com/dmitrymomot/typedmultipart/internal/codegen"
)

// envConfig holds the environment defaults. GOFILE and GOPACKAGE are set by
// go generate.
type envConfig struct {
	Output    string   `env:"MULTIPARTGEN_OUTPUT"`
	Tags      []string `env:"MULTIPARTGEN_TAGS" envSeparator:","`
	Config    string   `env:"MULTIPARTGEN_CONFIG"`
	LogLevel  string   `env:"MULTIPARTGEN_LOG_LEVEL" envDefault:"info"`
	GoFile    string   `env:"GOFILE"`
	GoPackage string   `env:"GOPACKAGE"`
}

var errUsage = errors.New("usage error")

func main() {
	var env envConfig
	config.MustLoad(&env)

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(env.LogLevel)),
		logger.WithAttrs(logger.Component("multipartgen")),
	)

	if err := run(os.Args[1:], env, log, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			log.Error("generation failed", logger.Error(err))
		}
		os.Exit(1)
	}
}

func run(args []string, env envConfig, log *slog.Logger, stderr io.Writer) error {
	fs := flag.NewFlagSet("multipartgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		typeNames  = fs.String("type", "", "comma-separated list of record type names; required")
		output     = fs.String("output", "", "output file name; default <file>_multipart.go")
		tags       = fs.String("tags", "", "comma-separated list of build tags to apply")
		configPath = fs.String("config", env.Config, "YAML configuration file")
		dir        = fs.String("dir", ".", "directory the packages are loaded from")
		debug      = fs.Bool("debug", false, "dump the analysed records to stderr")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage of multipartgen:\n")
		fmt.Fprintf(stderr, "\tmultipartgen -type T[,T...] [flags] [packages]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	var fileCfg codegen.Config
	if *configPath != "" {
		cfg, err := codegen.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		fileCfg = *cfg
	}

	types := splitList(*typeNames)
	if len(types) == 0 {
		types = fileCfg.Types
	}
	if len(types) == 0 {
		fs.Usage()
		return fmt.Errorf("%w: -type is required", errUsage)
	}

	buildTags := splitList(*tags)
	if len(buildTags) == 0 {
		buildTags = fileCfg.Tags
	}
	if len(buildTags) == 0 {
		buildTags = env.Tags
	}

	a := codegen.NewAnalyzer(
		codegen.WithBuildTags(buildTags...),
		codegen.WithTimeLayout(fileCfg.TimeLayout),
	)

	pkgs, err := a.Load(*dir, fs.Args()...)
	if err != nil {
		return err
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("expected exactly one package, got %d", len(pkgs))
	}
	pkg := pkgs[0]
	if env.GoPackage != "" && env.GoPackage != pkg.Name {
		log.Warn("package name differs from GOPACKAGE",
			logger.Key("package", pkg.Name),
			logger.Key("gopackage", env.GoPackage),
		)
	}

	file, err := a.File(pkg, types...)
	if err != nil {
		return err
	}
	if *debug {
		spew.Fdump(stderr, file)
	}

	src, err := codegen.Generate(file)
	if err != nil {
		return err
	}

	out := firstNonEmpty(*output, fileCfg.Output, env.Output, codegen.OutputName(env.GoFile, types...))
	if !filepath.IsAbs(out) {
		out = filepath.Join(outputDir(*dir, pkg.GoFiles), out)
	}
	if err := codegen.WriteFile(out, src); err != nil {
		return err
	}

	log.Info("generated",
		logger.File(out),
		logger.Record(strings.Join(types, ",")),
		logger.Count("records", len(file.Records)),
	)
	return nil
}

// outputDir is the directory of the loaded package, falling back to dir.
func outputDir(dir string, goFiles []string) string {
	if len(goFiles) > 0 {
		return filepath.Dir(goFiles[0])
	}
	return dir
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
