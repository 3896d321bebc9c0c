package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/tokencap/analysis"
	"github.com/randalmurphal/tokencap/export"
	"github.com/randalmurphal/tokencap/session"
)

var flagWatchFile string

// watchCmd re-analyzes a file every time it changes, until interrupted.
var watchCmd = &cobra.Command{
	Use:          "watch",
	Short:        "Re-analyze an input file on every change",
	SilenceUsage: true,
	RunE:         runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchFile, "file", "", "input file to watch")
	_ = watchCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, _, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := session.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	err = sess.WatchFile(ctx, flagWatchFile, func(result *analysis.Result, err error) {
		if err != nil {
			fmt.Fprintf(errOut, "watch: %v\n", err)
			return
		}
		warnDegraded(errOut, sess.ActiveTier())
		if flagFormat == "text" {
			renderResult(out, result)
			fmt.Fprintln(out)
			return
		}
		if encErr := export.Encode(out, export.Document{Result: result}, export.Format(flagFormat)); encErr != nil {
			fmt.Fprintf(errOut, "watch: %v\n", encErr)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
