package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/aretw0/writeup/internal/prompt"
	"github.com/aretw0/writeup/pkg/core"
	"github.com/aretw0/writeup/pkg/writeup"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose      bool
	templatePath string
	baseDir      string
	configPath   string
)

// rootCmd prompts for writeup details and files a new report.
var rootCmd = &cobra.Command{
	Use:   "writeup",
	Short: "Create a CTF writeup folder and prefill REPORT.md from a template",
	Long: `writeup asks for the details of a room or challenge, creates
YEAR/MM-MonthName/<room-slug>/ with screenshots/ and exploits/ folders,
and writes REPORT.md from your template with the metadata filled in.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		s, err := resolveSettings(cmd.Flags(), os.Getenv)
		if err != nil {
			fatal("Failed to load config", err)
		}

		res, err := runNew(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), s)
		switch {
		case errors.Is(err, core.ErrAborted):
			fmt.Fprintln(os.Stderr, "\nAborted.")
			os.Exit(1)
		case errors.Is(err, core.ErrTemplateNotFound):
			fmt.Fprintf(os.Stderr, "ERROR: Template not found at %s\n", s.Template)
			os.Exit(1)
		case err != nil:
			fatal("Failed to create writeup", err)
		}

		printResult(cmd.OutOrStdout(), res)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&baseDir, "base", "b", "", "Base directory for YEAR/MONTH/... (default: $BASE_DIR or current dir)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $WRITEUP_CONFIG or <user config dir>/writeup/config.yaml)")
	rootCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Path to template.md (default: $TEMPLATE_PATH or ./template.md)")
}

// settings are the effective values after flags, environment and config
// file have been merged.
type settings struct {
	Template string
	BaseDir  string
	Author   string
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// resolveSettings applies precedence: flag > environment > config file > default.
func resolveSettings(flags *pflag.FlagSet, getenv func(string) string) (settings, error) {
	cfgPath := pick(flags, "config", configPath, getenv(writeup.EnvConfig), writeup.DefaultConfigPath())
	cfg, err := writeup.LoadConfig(cfgPath)
	if err != nil {
		return settings{}, err
	}
	slog.Debug("config resolved", "path", cfgPath)

	return settings{
		Template: pick(flags, "template", templatePath, getenv(writeup.EnvTemplatePath), cfg.Template, writeup.DefaultTemplatePath),
		BaseDir:  pick(flags, "base", baseDir, getenv(writeup.EnvBaseDir), cfg.BaseDir, writeup.DefaultBaseDir),
		Author:   firstNonEmpty(cfg.Author, core.DefaultAuthor),
	}, nil
}

// pick returns the flag value when the flag was given, otherwise the first
// non-empty fallback.
func pick(flags *pflag.FlagSet, name, value string, fallbacks ...string) string {
	if f := flags.Lookup(name); f != nil && f.Changed {
		return value
	}
	return firstNonEmpty(fallbacks...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// runNew collects answers from in and generates the writeup. Ctrl+C only
// aborts while prompting.
func runNew(ctx context.Context, in io.Reader, out io.Writer, s settings) (writeup.Result, error) {
	promptCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	answers, err := prompt.Collect(promptCtx, prompt.New(in, out), s.Author)
	stop()
	if err != nil {
		return writeup.Result{}, err
	}

	opts := []writeup.Option{
		writeup.WithBaseDir(s.BaseDir),
		writeup.WithTemplatePath(s.Template),
		writeup.WithLogger(slog.Default()),
	}
	if s.Now != nil {
		opts = append(opts, writeup.WithClock(s.Now))
	}
	return writeup.New(opts...).Generate(ctx, answers)
}

func printResult(out io.Writer, res writeup.Result) {
	fmt.Fprintf(out, "[OK] REPORT ready -> %s\n", res.Layout.Report)
	fmt.Fprintf(out, "[DIR] screenshots -> %s\n", res.Layout.Screenshots)
	fmt.Fprintf(out, "[DIR] exploits    -> %s\n", res.Layout.Exploits)
}
