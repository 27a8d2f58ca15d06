package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dyluth/belay/internal/climb"
	"github.com/dyluth/belay/internal/printer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var outputFlag, contextFlag string

	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render disciplines and grades of climbs from a JSONL file",
		Long: `Render disciplines and grades of climbs read from a JSONL file.

Each line is a climb document:
  {"id":"<uuid>","name":"Snake Dike","disciplines":{"trad":true},"grades":{"yds":"5.7"}}

FILE defaults to stdin; "-" also reads stdin.

Output Formats:
  default - Human-readable table with ID, Name, Codes, Grade and Disciplines
  jsonl   - Line-delimited JSON, one climb per line

Examples:
  belay render climbs.jsonl
  cat climbs.jsonl | belay render --output=jsonl --context=FR`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := climb.ParseOutputFormat(outputFlag)
			if err != nil {
				return printer.Error(
					cmd.ErrOrStderr(),
					"invalid output format",
					fmt.Sprintf("Unknown format: %s", outputFlag),
					[]string{"Valid formats: default, jsonl"},
				)
			}

			ctx, err := opts.resolveContext(cmd, contextFlag)
			if err != nil {
				return err
			}

			source := "stdin"
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				source = args[0]
				f, err := os.Open(source)
				if err != nil {
					return printer.Error(
						cmd.ErrOrStderr(),
						"cannot open climbs file",
						err.Error(),
						nil,
					)
				}
				defer f.Close()
				in = f
			}

			climbs, err := climb.ReadJSONL(in)
			if err != nil {
				if lineErr, ok := err.(*climb.LineError); ok {
					return printer.ErrorWithContext(
						cmd.ErrOrStderr(),
						"invalid climb document",
						lineErr.Err.Error(),
						map[string]string{"File": source, "Line": strconv.Itoa(lineErr.Line)},
						[]string{"Each line must hold a climb with a UUID id and a name"},
					)
				}
				return fmt.Errorf("failed to read climbs: %w", err)
			}

			rd := opts.renderer()
			rows := make([]climb.Row, 0, len(climbs))
			for _, c := range climbs {
				rows = append(rows, climb.Render(rd, c, ctx))
			}

			opts.logger.Debug("rendered climbs",
				zap.String("source", source),
				zap.String("context", string(ctx)),
				zap.Int("count", len(rows)))

			return climb.Write(cmd.OutOrStdout(), format, rows)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "default", "Output format: default or jsonl")
	cmd.Flags().StringVar(&contextFlag, "context", "", "Grade context (default from belay.yml, else US)")

	return cmd
}
