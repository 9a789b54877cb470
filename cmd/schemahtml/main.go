// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

// schemahtml converts JSON Schema into embeddable HTML documentation.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/schemahtml"
	"github.com/woozymasta/schemahtml/internal/upgrade"
)

const (
	// binaryName is the release asset prefix and default program name.
	binaryName = "schemahtml"
	// releaseOwner and releaseRepo locate published releases.
	releaseOwner = "woozymasta"
	releaseRepo  = "schemahtml"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/schemahtml"
	_buildTime string
)

// cliOptions describes schemahtml global flags and subcommands.
type cliOptions struct {
	Verbose  []bool `short:"v" long:"verbose" description:"Increase log verbosity, repeat for more (-vv)"`
	LogLevel string `short:"L" long:"log-level" env:"SCHEMAHTML_LOG_LEVEL" description:"Log level name (error, warn, info, debug) or syslog severity 0-7" default:"warn"`

	Convert convertCommand `command:"convert" alias:"c" description:"Convert JSON Schema to HTML documentation"`
	Upgrade upgradeCommand `command:"upgrade" alias:"u" description:"Upgrade the CLI to a newer version"`
	Version versionCommand `command:"version" description:"Print version information"`
}

// convertCommand renders schema from file or stdin into HTML.
type convertCommand struct {
	runner *cliRunner

	Input    string `short:"i" long:"input" value-name:"FILE" description:"Input JSON Schema file (stdin when omitted)"`
	Output   string `short:"o" long:"output" value-name:"FILE" description:"Output HTML file (stdout when omitted)"`
	Format   string `short:"F" long:"format" description:"Input document format" choice:"auto" choice:"json" choice:"yaml" default:"auto"`
	NoMinify bool   `long:"no-minify" description:"Don't minify the output HTML"`
}

// Execute runs convert subcommand.
func (command *convertCommand) Execute(_ []string) error {
	return command.runner.runConvert(convertOptions{
		InputPath:  command.Input,
		OutputPath: command.Output,
		Format:     schemahtml.Format(command.Format),
		NoMinify:   command.NoMinify,
	})
}

// upgradeCommand replaces the running binary with a published release.
type upgradeCommand struct {
	runner *cliRunner

	Version string `long:"version" value-name:"VERSION" description:"Install this release version instead of the latest"`
	Force   bool   `long:"force" description:"Reinstall even when current version is up to date"`
	Check   bool   `long:"check" description:"Only report whether a newer version is available"`
	APIURL  string `long:"api-url" env:"SCHEMAHTML_RELEASE_API" hidden:"yes" default:"https://api.github.com"`
}

// Execute runs upgrade subcommand.
func (command *upgradeCommand) Execute(_ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return command.runner.runUpgrade(ctx, upgradeOptions{
		Version: command.Version,
		Force:   command.Force,
		Check:   command.Check,
		APIURL:  command.APIURL,
	})
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

// convertOptions configures one convert run.
type convertOptions struct {
	// InputPath is schema file; stdin when empty.
	InputPath string
	// OutputPath is HTML file; stdout when empty.
	OutputPath string
	Format     schemahtml.Format
	NoMinify   bool
}

// upgradeOptions configures one upgrade run.
type upgradeOptions struct {
	Version string
	Force   bool
	Check   bool
	APIURL  string
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	logger      *log.Logger
	// executable resolves binary path replaced by upgrade.
	executable func() (string, error)
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
		programName = binaryName
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		logger:      newLogger(stderr, defaultLogLevel),
		executable:  currentExecutable,
	}

	return runner.run(args)
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

// runConvert reads schema, renders HTML and writes result to stdout or file.
func (runner *cliRunner) runConvert(opt convertOptions) error {
	runner.logger.Info("Processing compilation to HTML.")

	schemaBytes, sourcePath, err := runner.readSchemaInput(opt.InputPath)
	if err != nil {
		return fmt.Errorf("read schema input: %w", err)
	}

	format := schemahtml.FormatForPath(opt.Format, opt.InputPath)
	schema, err := schemahtml.Decode(schemaBytes, format)
	if err != nil {
		return fmt.Errorf("parse schema from %s: %w", sourcePath, err)
	}

	runner.warnSchemaDraft(schema)

	runner.logger.Debug("Generating HTML.", "source", sourcePath)
	html, err := schemahtml.Render(schema)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	if opt.NoMinify {
		runner.logger.Debug("Skipping HTML minification.")
	} else {
		runner.logger.Debug("Minifying HTML output.")
		html = schemahtml.Minify(html)
	}

	if err := runner.writeOutput(html, opt.OutputPath); err != nil {
		return err
	}

	runner.logger.Info("Successfully converted to HTML.")
	return nil
}

// warnSchemaDraft logs when `$schema` is missing or names an unknown draft.
func (runner *cliRunner) warnSchemaDraft(schema schemahtml.Value) {
	draft := schemahtml.SchemaDraft(schema)
	switch {
	case draft.Raw == "":
		runner.logger.Debug("Schema has no $schema value; draft support is unknown.")
	case !draft.Supported:
		runner.logger.Warn("Unsupported $schema value.", "schema", draft.Raw)
	default:
		runner.logger.Debug("Detected schema draft.", "draft", draft.Canonical)
	}
}

// runUpgrade finds target release and replaces the running executable.
func (runner *cliRunner) runUpgrade(ctx context.Context, opt upgradeOptions) error {
	client := upgrade.NewClient(releaseOwner, releaseRepo, binaryName+"/"+Version)
	client.BaseURL = opt.APIURL

	var (
		release upgrade.Release
		err     error
	)

	if version := strings.TrimSpace(opt.Version); version != "" {
		runner.logger.Debug("Fetching release.", "version", version)
		release, err = client.Release(ctx, version)
	} else {
		runner.logger.Debug("Fetching latest release.")
		release, err = client.Latest(ctx)
	}

	if err != nil {
		return fmt.Errorf("find release: %w", err)
	}

	needed, err := upgrade.NeedsUpgrade(Version, release.TagName, opt.Force)
	if err != nil {
		return fmt.Errorf("compare versions: %w", err)
	}

	if opt.Check {
		if needed {
			_, _ = fmt.Fprintf(runner.stdout, "update available: %s -> %s\n", Version, release.TagName)
		} else {
			_, _ = fmt.Fprintf(runner.stdout, "up to date: %s\n", Version)
		}

		return nil
	}

	if !needed {
		runner.logger.Info("Already up to date.", "version", Version)
		return nil
	}

	asset, err := upgrade.SelectAsset(release, binaryName, runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	executable, err := runner.executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	runner.logger.Info("Downloading release.", "version", release.TagName, "asset", asset.Name)
	body, err := client.Download(ctx, asset)
	if err != nil {
		return err
	}
	defer func() {
		_ = body.Close()
	}()

	if err := upgrade.ReplaceExecutable(executable, body); err != nil {
		return err
	}

	runner.logger.Info("Upgraded.", "from", Version, "to", release.TagName)
	return nil
}

// readSchemaInput reads schema from file path or stdin and returns source marker.
func (runner *cliRunner) readSchemaInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		runner.logger.Debug("Reading schema.", "path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, "", fmt.Errorf("%w: %q", schemahtml.ErrInputNotFound, path)
			}

			return nil, "", fmt.Errorf("read schema file %q: %w", path, err)
		}

		return data, path, nil
	}

	runner.logger.Debug("No input file specified, reading from stdin.")
	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read schema from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read schema from stdin: empty input")
	}

	return data, "(stdin)", nil
}

// writeOutput writes rendered HTML to file or stdout.
func (runner *cliRunner) writeOutput(content, outputPath string) error {
	if strings.TrimSpace(outputPath) == "" {
		runner.logger.Debug("Writing output to stdout.")
		if _, err := io.WriteString(runner.stdout, content); err != nil {
			return fmt.Errorf("write html to stdout: %w", err)
		}

		return nil
	}

	runner.logger.Debug("Writing output.", "path", outputPath)
	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write html file %q: %w", outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments, configures logging and runs selected subcommand.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Convert.runner = runner
	options.Upgrade.runner = runner
	options.Version.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.ShortDescription = "JSON Schema to HTML converter"
	parser.LongDescription = "Convert JSON Schema documents into embeddable HTML documentation."
	parser.CommandHandler = func(command flags.Commander, commandArgs []string) error {
		level, err := resolveLogLevel(options.LogLevel, len(options.Verbose))
		if err != nil {
			return err
		}

		runner.logger = newLogger(runner.stderr, level)
		runner.logger.Debug("Logging initialized.", "level", level.String())

		if command == nil {
			return nil
		}

		return command.Execute(commandArgs)
	}

	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"convert": strings.TrimSpace(fmt.Sprintf(`
Convert JSON Schema to HTML documentation.
Reads schema (JSON or YAML) from --input or stdin; writes an HTML fragment to --output or stdout.
Output is minified unless --no-minify is set.

Examples:
> $ %s convert -i schema.json -o schema.html
> $ cat schema.json | %s c --no-minify > schema.html
`, programName, programName)),
		"upgrade": strings.TrimSpace(fmt.Sprintf(`
Upgrade the CLI to a newer version.
Downloads the release built for this platform and replaces the running binary.

Examples:
> $ %s upgrade --check
> $ %s upgrade --version 1.2.0 --force
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// currentExecutable returns resolved path of the running binary.
func currentExecutable() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(path)
}

func printVersionInfo(w io.Writer) {
	_, _ = fmt.Fprintf(w, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
