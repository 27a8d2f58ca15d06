package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/belay/internal/printer"
	"github.com/dyluth/belay/pkg/discipline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const recordExample = `'{"trad":true,"aid":true}'`

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names RECORD_JSON",
		Short: "Print the display name of every active discipline",
		Long: `Print the display name of every active discipline, one per line.

Examples:
  belay names '{"trad":true,"deepwatersolo":true}'
  # Deepwatersolo
  # Trad`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRecordArg(cmd, args[0])
			if err != nil {
				return err
			}
			for _, name := range discipline.Names(r) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes RECORD_JSON",
		Short: "Print the space-delimited discipline codes of a record",
		Long: `Print the space-delimited discipline codes of a record.

Codes are the first letter of each active discipline, except top-rope which
is TR. Aid and alpine both encode as A, sport and snow both encode as S.

Examples:
  belay codes '{"trad":true,"aid":true}'
  # T A`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRecordArg(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), discipline.CodesString(r))
			return nil
		},
	}
}

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	var strict, full bool

	cmd := &cobra.Command{
		Use:   "decode CODES",
		Short: "Decode space-delimited discipline codes into a record",
		Long: `Decode space-delimited discipline codes into a JSON record.

Recognized codes (case-insensitive): S (sport), T (trad), A (aid),
TR (top-rope), B (bouldering). Unrecognized codes are reported as a warning
and skipped; with --strict they fail the command. The decoded record is
printed in both cases.

Examples:
  belay decode "T A"
  # {"aid":true,"trad":true}

  belay decode --full "tr"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := discipline.DecodeStrict(args[0])
			if full {
				r = discipline.Default().Merge(r)
			}
			if werr := writeJSON(cmd.OutOrStdout(), r); werr != nil {
				return werr
			}
			if err == nil {
				return nil
			}

			decodeErr := err.(*discipline.DecodeError)
			opts.logger.Debug("unrecognized discipline codes",
				zap.String("input", decodeErr.Input),
				zap.Strings("tokens", decodeErr.Tokens))

			if strict {
				return printer.Error(
					cmd.ErrOrStderr(),
					"unrecognized discipline codes",
					err.Error(),
					[]string{"Valid codes: S, T, A, TR, B separated by single spaces"},
				)
			}
			printer.Warning(cmd.ErrOrStderr(), "%s\n", err.Error())
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unrecognized codes")
	cmd.Flags().BoolVar(&full, "full", false, "Include every discipline, unset ones as false")

	return cmd
}

func newDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the default record with every discipline set to false",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), discipline.Default())
		},
	}
}

// parseRecordArg decodes a discipline record passed on the command line.
func parseRecordArg(cmd *cobra.Command, arg string) (discipline.Record, error) {
	r, err := discipline.ParseJSON(arg)
	if err != nil {
		return nil, printer.Error(
			cmd.ErrOrStderr(),
			"invalid discipline record",
			err.Error(),
			[]string{fmt.Sprintf("Pass a JSON object of booleans, e.g. %s", recordExample)},
		)
	}
	return r, nil
}

// writeJSON writes v as a single line of JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, strings.TrimSpace(string(data)))
	return err
}
