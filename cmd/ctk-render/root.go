package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	ctk "github.com/goliatone/go-ctk"
	"github.com/goliatone/go-ctk/internal/logging"
	"github.com/goliatone/go-ctk/pkg/page"
	"github.com/goliatone/go-ctk/pkg/pagespec"
)

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CTK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "ctk-render <document.yaml>",
		Short:         "Render a page document to HTML",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	registerFlags(cmd.Flags())
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func registerFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", "", "output file (stdout if empty)")
	flags.IntP("parallel", "p", -1, "render top-level components concurrently with this many workers (0 = GOMAXPROCS, -1 = off)")
	flags.BoolP("verbose", "v", false, "log debug records to stderr")
	flags.String("log-format", "text", "log format: text or json")
	flags.BoolP("watch", "w", false, "re-render when the document or its blueprints change")
}

func run(ctx context.Context, v *viper.Viper, path string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	level := slog.LevelWarn
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := logging.New(stderr, v.GetString("log-format"), level)
	ctx = logging.WithLogger(ctx, logger)

	var pageOptions []page.Option
	if workers := v.GetInt("parallel"); workers >= 0 {
		pageOptions = append(pageOptions, page.WithParallel(workers))
	}

	output := v.GetString("output")
	render := func() error {
		html, err := ctk.RenderDocument(ctx, path, pagespec.WithPageOptions(pageOptions...))
		if err != nil {
			return fmt.Errorf("ctk-render: %w", err)
		}
		if output == "" {
			_, err := io.WriteString(stdout, html)
			return err
		}
		if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
			return fmt.Errorf("ctk-render: write output: %w", err)
		}
		logger.Info("page written", "path", output, "bytes", len(html))
		return nil
	}

	if err := render(); err != nil {
		return err
	}
	if !v.GetBool("watch") {
		return nil
	}
	return watchDocument(ctx, path, output, logger, render)
}
