package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/fluentcheck"
	"github.com/reoring/fluentcheck/document"
	"github.com/reoring/fluentcheck/examples/nested"
)

// errInvalid signals a failed validation whose result was already written.
var errInvalid = errors.New("document is invalid")

type checkOptions struct {
	output string
	format string
	throw  bool
}

func newCheckCmd(cfg Config) *cobra.Command {
	opts := checkOptions{output: cfg.Output, format: string(document.FormatJSON), throw: cfg.Throw}
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a JSON or YAML document",
		Long: `Validate a JSON or YAML document. The format of a file follows its extension;
standard input (no file, or "-") is read as --format.

Exits with status 1 when the document is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, cfg, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "result format: json or yaml")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "input format for standard input: json or yaml")
	cmd.Flags().BoolVar(&opts.throw, "throw", opts.throw, "report failures as an error list on stderr instead of a result")
	return cmd
}

func runCheck(cmd *cobra.Command, cfg Config, opts checkOptions, args []string) error {
	out, err := document.ParseFormat(opts.output)
	if err != nil {
		return fmt.Errorf("--output: %w", err)
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	doc, err := readDocument(cmd.InOrStdin(), source, opts.format)
	if err != nil {
		return err
	}

	res, err := nested.ForDocument(fluentcheck.WithLogger(logger)).
		Validate(doc, fluentcheck.ValidateOpt{ThrowOnError: opts.throw})
	logger.Info("document checked",
		slog.String("source", source),
		slog.Bool("valid", res.Valid),
		slog.Int("errors", len(res.Errors)),
	)
	if err != nil {
		return err
	}
	if err := writeResult(cmd.OutOrStdout(), res, out); err != nil {
		return err
	}
	if !res.Valid {
		return errInvalid
	}
	return nil
}

func readDocument(stdin io.Reader, source, format string) (any, error) {
	if source != "-" {
		return document.DecodeFile(source)
	}
	f, err := document.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("--format: %w", err)
	}
	return document.DecodeReader(stdin, f)
}

func writeResult(w io.Writer, res fluentcheck.Result, f document.Format) error {
	switch f {
	case document.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return enc.Close()
	default:
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
}
