// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/structdoc

// structdoc renders AsciiDoc reference pages from documentation models.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/structdoc"
)

const (
	// stdinPath selects stdin as model input.
	stdinPath = "-"
	// defaultExtension is appended to struct names for output files.
	defaultExtension = ".adoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/structdoc"
	_buildTime string
)

// cliOptions describes structdoc CLI flags and subcommands.
type cliOptions struct {
	Logging loggingFlags `group:"Logging"`

	Version versionCommand `command:"version" description:"Print version information"`
	Render  renderCommand  `command:"render" description:"Render AsciiDoc pages from model file"`
	List    listCommand    `command:"list" description:"List struct names from model file"`
	Type    typeCommand    `command:"type" description:"Render type expressions as AsciiDoc"`
	Format  formatCommand  `command:"fmt" description:"Rewrite model file in canonical YAML"`
}

// loggingFlags groups diagnostic output flags.
type loggingFlags struct {
	Verbose   bool   `short:"v" long:"verbose" description:"Enable debug logging"`
	LogFormat string `long:"log-format" description:"Log output format" choice:"text" choice:"json" default:"text"`
}

// renderFlags groups document rendering flags.
type renderFlags struct {
	Banner    bool   `short:"b" long:"banner" description:"Prepend generated-file warning banner"`
	FieldsGap bool   `long:"fields-gap" description:"Write blank line before the fields list"`
	Generator string `short:"g" long:"generator" description:"Generator name printed in banner" default:"structdoc"`
	MaxDepth  int    `short:"d" long:"max-depth" description:"Maximum nested type depth (0 means unlimited)" default:"0"`
}

// renderCommand renders model structs to stdout or output directory.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Model  string `positional-arg-name:"model" description:"Model file path, YAML or JSON ('-' for stdin)" required:"yes"`
		Output string `positional-arg-name:"output-dir" description:"Output directory (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Structs   []string `short:"s" long:"struct" description:"Render only named struct (repeatable)"`
	Extension string   `short:"e" long:"ext" description:"Output file extension" default:".adoc"`

	RenderFlags renderFlags `group:"Render"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(renderRequest{
		ModelPath: command.Args.Model,
		OutputDir: command.Args.Output,
		Structs:   command.Structs,
		Extension: command.Extension,
		Options: structdoc.Options{
			Banner:       command.RenderFlags.Banner,
			FieldsGap:    command.RenderFlags.FieldsGap,
			Generator:    command.RenderFlags.Generator,
			MaxTypeDepth: command.RenderFlags.MaxDepth,
		},
	})
}

// listCommand prints struct names.
type listCommand struct {
	runner *cliRunner
	Args   struct {
		Model string `positional-arg-name:"model" description:"Model file path, YAML or JSON ('-' for stdin)" required:"yes"`
	} `positional-args:"yes"`
}

// Execute runs list subcommand.
func (command *listCommand) Execute(_ []string) error {
	return command.runner.runList(command.Args.Model)
}

// typeCommand renders standalone type expressions.
type typeCommand struct {
	runner *cliRunner
	Args   struct {
		Expressions []string `positional-arg-name:"expr" description:"Type expression (for example: Vec<HashMap<String, @Item>>)" required:"1"`
	} `positional-args:"yes"`
}

// Execute runs type subcommand.
func (command *typeCommand) Execute(_ []string) error {
	return command.runner.runType(command.Args.Expressions)
}

// formatCommand rewrites model file as canonical YAML.
type formatCommand struct {
	runner *cliRunner
	Args   struct {
		Model  string `positional-arg-name:"model" description:"Model file path, YAML or JSON ('-' for stdin)" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output YAML file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs fmt subcommand.
func (command *formatCommand) Execute(_ []string) error {
	return command.runner.runFormat(command.Args.Model, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	log         *logrus.Logger
}

// renderRequest carries render subcommand arguments.
type renderRequest struct {
	ModelPath string
	OutputDir string
	Structs   []string
	Extension string
	Options   structdoc.Options
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "structdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		log:         newLogger(stderr, loggingFlags{}),
	}

	return runner.run(args)
}

// newLogger builds a logger writing to output with selected level and format.
func newLogger(output io.Writer, options loggingFlags) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetLevel(logrus.InfoLevel)
	if options.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if options.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	}

	return logger
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runRender renders selected structs to stdout or one file per struct.
func (runner *cliRunner) runRender(request renderRequest) error {
	model, source, err := runner.readModel(request.ModelPath)
	if err != nil {
		return err
	}

	selected, err := selectStructs(model, request.Structs)
	if err != nil {
		return err
	}

	runner.warnDanglingLinks(model, selected)

	outputDir := strings.TrimSpace(request.OutputDir)
	if outputDir == "" {
		for _, s := range selected {
			if err := structdoc.Render(runner.stdout, s, request.Options); err != nil {
				return fmt.Errorf("render %q to stdout: %w", s.Name, err)
			}
		}

		runner.log.WithFields(logrus.Fields{"model": source, "structs": len(selected)}).Debug("rendered to stdout")
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %q: %w", outputDir, err)
	}

	for _, s := range selected {
		fileName, err := outputFileName(s.Name, request.Extension)
		if err != nil {
			return err
		}

		rendered, err := structdoc.RenderString(s, request.Options)
		if err != nil {
			return fmt.Errorf("render %q: %w", s.Name, err)
		}

		outputPath := filepath.Join(outputDir, fileName)
		if err := os.WriteFile(outputPath, []byte(rendered), 0o600); err != nil {
			return fmt.Errorf("write doc file %q: %w", outputPath, err)
		}

		runner.log.WithFields(logrus.Fields{"struct": s.Name, "path": outputPath}).Debug("wrote doc file")
	}

	runner.log.WithFields(logrus.Fields{"model": source, "structs": len(selected), "dir": outputDir}).Info("rendered docs")
	return nil
}

// runList prints struct names in model order.
func (runner *cliRunner) runList(modelPath string) error {
	model, _, err := runner.readModel(modelPath)
	if err != nil {
		return err
	}

	for _, name := range model.Names() {
		if _, err := fmt.Fprintln(runner.stdout, name); err != nil {
			return fmt.Errorf("write list to stdout: %w", err)
		}
	}

	return nil
}

// runType parses and renders each expression on its own line.
func (runner *cliRunner) runType(expressions []string) error {
	for _, expr := range expressions {
		parsed, err := structdoc.ParseType(expr)
		if err != nil {
			return err
		}

		rendered, err := structdoc.RenderType(parsed)
		if err != nil {
			return fmt.Errorf("render type %q: %w", expr, err)
		}

		if _, err := fmt.Fprintln(runner.stdout, rendered); err != nil {
			return fmt.Errorf("write type to stdout: %w", err)
		}
	}

	return nil
}

// runFormat writes canonical model YAML to stdout or file.
func (runner *cliRunner) runFormat(modelPath, outputPath string) error {
	model, _, err := runner.readModel(modelPath)
	if err != nil {
		return err
	}

	data, err := structdoc.EncodeModel(model)
	if err != nil {
		return err
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write model to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write model file %q: %w", outputPath, err)
	}

	return nil
}

// readModel loads model from file path or stdin and returns source marker.
func (runner *cliRunner) readModel(path string) (structdoc.Model, string, error) {
	path = strings.TrimSpace(path)
	if path != stdinPath {
		model, err := structdoc.LoadModel(path)
		if err != nil {
			return structdoc.Model{}, "", fmt.Errorf("load model %q: %w", path, err)
		}

		runner.log.WithFields(logrus.Fields{"path": path, "structs": len(model.Structs)}).Debug("loaded model")
		return model, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return structdoc.Model{}, "", fmt.Errorf("read model from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return structdoc.Model{}, "", errors.New("read model from stdin: empty input")
	}

	model, err := structdoc.DecodeModel(data)
	if err != nil {
		return structdoc.Model{}, "", fmt.Errorf("load model from stdin: %w", err)
	}

	return model, "(stdin)", nil
}

// warnDanglingLinks logs cross-references that point outside the model.
func (runner *cliRunner) warnDanglingLinks(model structdoc.Model, selected []structdoc.Struct) {
	for _, s := range selected {
		for _, target := range s.Links() {
			if _, ok := model.Lookup(target); ok {
				continue
			}

			runner.log.WithFields(logrus.Fields{"struct": s.Name, "link": target}).Warn("link target not found in model")
		}
	}
}

// selectStructs returns named structs in request order, or all structs when names are empty.
func selectStructs(model structdoc.Model, names []string) ([]structdoc.Struct, error) {
	if len(names) == 0 {
		return model.Structs, nil
	}

	selected := make([]structdoc.Struct, 0, len(names))
	for _, name := range names {
		s, ok := model.Lookup(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown struct %q", name)
		}

		selected = append(selected, s)
	}

	return selected, nil
}

// outputFileName builds a file name for struct, rejecting path-like names.
func outputFileName(name, extension string) (string, error) {
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("struct name %q is not a valid file name", name)
	}

	extension = strings.TrimSpace(extension)
	if extension == "" {
		extension = defaultExtension
	}

	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	return name + extension, nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Render.runner = runner
	options.List.runner = runner
	options.Type.runner = runner
	options.Format.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		runner.log = newLogger(runner.stderr, options.Logging)
		if command == nil {
			return nil
		}

		return command.Execute(args)
	}
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Render AsciiDoc pages from a YAML or JSON model file.
Without output directory all structs are written to stdout in model order;
with output directory every struct is written to <dir>/<name>.adoc.

Examples:
> $ %s render model.yaml > reference.adoc
> $ %s render --banner -s Config model.yaml docs/reference
`, programName, programName)),
		"list": strings.TrimSpace(fmt.Sprintf(`
Print struct names from a model file, one per line.

Examples:
> $ %s list model.yaml
`, programName)),
		"type": strings.TrimSpace(fmt.Sprintf(`
Render type expressions as they appear in field docs.
Prefix a name with @ to render it as cross-reference.

Examples:
> $ %s type 'Vec<HashMap<String, @Item>>'
`, programName)),
		"fmt": strings.TrimSpace(fmt.Sprintf(`
Rewrite a model file as canonical YAML with type expressions.

Examples:
> $ %s fmt model.json model.yaml
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
