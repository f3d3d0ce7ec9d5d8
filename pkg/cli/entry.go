package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/funvibe/pyvet/internal/checker"
	"github.com/funvibe/pyvet/internal/config"
	"github.com/funvibe/pyvet/internal/diagnostics"
	"github.com/funvibe/pyvet/internal/jinja"
	"github.com/funvibe/pyvet/internal/lexer"
	"github.com/funvibe/pyvet/internal/parser"
	"github.com/funvibe/pyvet/internal/pipeline"
)

var (
	flagOutput  string
	flagConfig  string
	flagVerbose bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:           "pyvet <file>",
	Short:         "A type checker for Python programs.",
	Long:          "pyvet type-checks Python source files and reports structured diagnostics.\nTemplate files (.jinja, .jinja2, .html) are routed to the template front-end.",
	Args:          cobra.ExactArgs(1),
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "-", "output file, '-' for stdout")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to pyvet.yaml (default: walk up from the checked file)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "Failed to open file: %s\n", err)
		os.Exit(1)
	}
	if !utf8.Valid(raw) {
		fmt.Fprintf(out, "File contains invalid UTF8 sequences: %s\n", path)
		os.Exit(1)
	}
	content := string(raw)

	color := useColor(cfg)

	if config.HasExt(path, config.TemplateFileExtensions) {
		return runTemplate(path, content, out, color)
	}
	return runPython(path, content, out, color)
}

// runPython pushes the file through the lex, parse, and check stages and
// renders the session's diagnostics.
func runPython(path, content string, out io.Writer, color bool) error {
	ctx := pipeline.NewContext(content)
	ctx.FilePath = path

	processing := pipeline.New(
		lexer.LexProcessor{},
		parser.ParseProcessor{},
		checker.CheckProcessor{},
	)
	final := processing.Run(ctx)

	if len(final.Errors) > 0 {
		fmt.Fprintln(out, "Failed to parse Python into AST:")
		for _, d := range final.Errors {
			if err := diagnostics.Render(d, path, content, out, color); err != nil {
				return err
			}
		}
		os.Exit(1)
	}

	info := final.Info.(*checker.Info)
	errorCount := info.Reporter.ErrorCount()
	if err := info.Reporter.Flush(path, content, out, color); err != nil {
		return err
	}
	if errorCount > 0 {
		fmt.Fprintf(out, "Found %d errors\n", errorCount)
		os.Exit(1)
	}
	fmt.Fprintln(out, "No errors found")
	return nil
}

func runTemplate(path, content string, out io.Writer, color bool) error {
	reporter := jinja.CheckFile(path, content)
	errorCount := reporter.ErrorCount()
	if err := reporter.Flush(path, content, out, color); err != nil {
		return err
	}
	if errorCount > 0 {
		fmt.Fprintf(out, "Found %d errors\n", errorCount)
		os.Exit(1)
	}
	fmt.Fprintln(out, "No errors found")
	return nil
}

func loadConfig(path string) (*config.File, error) {
	configPath := flagConfig
	if configPath == "" {
		found, err := config.Find(filepath.Dir(path))
		if err != nil {
			return nil, err
		}
		configPath = found
	}
	if configPath == "" {
		return &config.File{}, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.Apply()
	log.WithField("config", configPath).Debug("loaded project config")
	return cfg, nil
}

func openOutput() (io.Writer, func(), error) {
	if flagOutput == "" || flagOutput == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(flagOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output %s: %w", flagOutput, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func useColor(cfg *config.File) bool {
	if flagNoColor || cfg.NoColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if flagOutput != "" && flagOutput != "-" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
