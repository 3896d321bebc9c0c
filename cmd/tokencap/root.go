package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/tokencap/analysis"
	"github.com/randalmurphal/tokencap/capacity"
	"github.com/randalmurphal/tokencap/export"
	"github.com/randalmurphal/tokencap/session"
	"github.com/randalmurphal/tokencap/tokenizer"
)

var (
	// Input flags
	flagText string
	flagFile string

	// Analysis configuration flags
	flagSeparator string
	flagCustomSep string
	flagKeepEmpty bool
	flagLowercase bool
	flagEncoding  string
	flagMode      string
	flagSettings  string

	// Output flags
	flagFormat string

	// Capacity flags
	flagCapacity  bool
	flagUsers     float64
	flagQuestions float64
)

// rootCmd analyzes a batch of lines from --text, --file, or stdin.
var rootCmd = &cobra.Command{
	Use:   "tokencap",
	Short: "Token and capacity calculator for text batches",
	Long: `tokencap estimates per-line and aggregate token counts for batches of
text lines, degrading gracefully from a model-matched BPE encoding down to a
character-length heuristic, and optionally projects daily Capacity-Unit (CU)
requirements from demand parameters.`,
	SilenceUsage: true,
	RunE:         runAnalyze,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagSeparator, "separator", "newline", "unit separator: newline, semicolon (;), pipe (|), or custom")
	pf.StringVar(&flagCustomSep, "custom-separator", "", "literal separator when --separator=custom")
	pf.BoolVar(&flagKeepEmpty, "keep-empty", false, "keep units that trim to empty instead of dropping them")
	pf.BoolVar(&flagLowercase, "lowercase", false, "case-fold every unit")
	pf.StringVar(&flagEncoding, "encoding", "", "model or encoding hint for the primary tokenizer tier")
	pf.StringVar(&flagMode, "tokenizer-mode", "auto", "tier resolution: auto or heuristic")
	pf.StringVar(&flagSettings, "settings", "", "settings file (.toml, .yaml, .yml)")
	pf.StringVar(&flagFormat, "format", "text", "output format: text, json, or yaml")

	f := rootCmd.Flags()
	f.StringVar(&flagText, "text", "", "input text (reads stdin if omitted)")
	f.StringVar(&flagFile, "file", "", "input file (overrides stdin)")
	f.BoolVar(&flagCapacity, "capacity", false, "include a capacity projection")
	f.Float64Var(&flagUsers, "users-per-day", 0, "users per day for the capacity projection")
	f.Float64Var(&flagQuestions, "questions-per-user", 0, "questions per user per day for the capacity projection")
}

// buildConfig assembles the analysis configuration: defaults, then the
// settings file, then explicit flag overrides.
func buildConfig(cmd *cobra.Command) (analysis.Config, *session.Settings, error) {
	cfg := analysis.DefaultConfig()
	var settings *session.Settings

	if flagSettings != "" {
		var err error
		settings, err = session.LoadSettings(flagSettings)
		if err != nil {
			return analysis.Config{}, nil, err
		}
		cfg, err = settings.Config()
		if err != nil {
			return analysis.Config{}, nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("separator") {
		mode, err := separatorMode(flagSeparator)
		if err != nil {
			return analysis.Config{}, nil, err
		}
		cfg.Separator = mode
	}
	if flags.Changed("custom-separator") {
		cfg.CustomSeparator = flagCustomSep
		if !flags.Changed("separator") {
			cfg.Separator = analysis.SeparatorCustom
		}
	}
	if flags.Changed("keep-empty") {
		cfg.RemoveEmpty = !flagKeepEmpty
	}
	if flags.Changed("lowercase") {
		cfg.Lowercase = flagLowercase
	}
	if flags.Changed("encoding") {
		cfg.Encoding = flagEncoding
	}
	if flags.Changed("tokenizer-mode") {
		cfg.TokenizerMode = tokenizer.Mode(flagMode)
	}

	if err := cfg.Validate(); err != nil {
		return analysis.Config{}, nil, err
	}
	return cfg, settings, nil
}

// separatorMode maps the CLI spelling of a separator to its mode.
func separatorMode(s string) (analysis.SeparatorMode, error) {
	switch s {
	case "newline", "\n":
		return analysis.SeparatorNewline, nil
	case "semicolon", ";":
		return analysis.SeparatorSemicolon, nil
	case "pipe", "|":
		return analysis.SeparatorPipe, nil
	case "custom":
		return analysis.SeparatorCustom, nil
	default:
		return "", fmt.Errorf("unknown separator %q (want newline, semicolon, pipe, or custom)", s)
	}
}

// readInput returns the raw batch text from --text, --file, or stdin.
func readInput(cmd *cobra.Command) (string, error) {
	if flagText != "" {
		return flagText, nil
	}
	if flagFile != "" {
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, settings, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	raw, err := readInput(cmd)
	if err != nil {
		return err
	}

	sess, err := session.New(cfg)
	if err != nil {
		return err
	}
	result, err := sess.Analyze(raw)
	if err != nil {
		return err
	}

	var scenario *capacity.Scenario
	if flagCapacity {
		users, questions := flagUsers, flagQuestions
		if settings != nil {
			if !cmd.Flags().Changed("users-per-day") {
				users = settings.UsersPerDay
			}
			if !cmd.Flags().Changed("questions-per-user") {
				questions = settings.QuestionsPerUser
			}
		}
		scenario, err = sess.Capacity(result, users, questions)
		if err != nil {
			return err
		}
	}

	warnDegraded(cmd.ErrOrStderr(), sess.ActiveTier())

	out := cmd.OutOrStdout()
	if flagFormat == "text" {
		renderResult(out, result)
		if scenario != nil {
			fmt.Fprintln(out)
			renderScenario(out, scenario)
		}
		return nil
	}
	return export.Encode(out, export.Document{Result: result, Capacity: scenario}, export.Format(flagFormat))
}

// warnDegraded tells the user when estimates did not come from the
// primary tier, so a degraded estimate is never mistaken for a
// high-fidelity one.
func warnDegraded(w io.Writer, tier tokenizer.Tier) {
	switch tier {
	case tokenizer.TierSecondary:
		fmt.Fprintf(w, "note: requested encoding unavailable, counts use the %s fallback\n", tokenizer.DefaultEncoding)
	case tokenizer.TierHeuristic:
		fmt.Fprintln(w, "note: counts are heuristic estimates (chars/4), no tokenizer data loaded")
	}
}
