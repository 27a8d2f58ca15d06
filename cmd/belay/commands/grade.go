package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dyluth/belay/internal/printer"
	"github.com/dyluth/belay/pkg/discipline"
	"github.com/dyluth/belay/pkg/grade"
	"github.com/spf13/cobra"
)

func newGradeCmd(opts *rootOptions) *cobra.Command {
	var gradesJSON, contextFlag string

	cmd := &cobra.Command{
		Use:   "grade RECORD_JSON",
		Short: "Render a climb's grades for its active disciplines",
		Long: `Render a climb's grades for its active disciplines.

Each active discipline is mapped to a scale by the grade context, and the
climb's grade on that scale is printed. Disciplines without a scale or
without a grade are left out. Run with --verbose to see why.

Examples:
  belay grade '{"trad":true,"aid":true}' --grades '{"yds":"5.9","aid":"C2"}'
  # 5.9 C2

  belay grade '{"bouldering":true}' --grades '{"font":"7A"}' --context FR`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRecordArg(cmd, args[0])
			if err != nil {
				return err
			}

			var values grade.Values
			if gradesJSON != "" {
				if err := json.Unmarshal([]byte(gradesJSON), &values); err != nil {
					return printer.Error(
						cmd.ErrOrStderr(),
						"invalid grades",
						err.Error(),
						[]string{`Pass a JSON object of scale → grade, e.g. '{"yds":"5.10a"}'`},
					)
				}
			}

			ctx, err := opts.resolveContext(cmd, contextFlag)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), opts.renderer().String(values, r, ctx))
			return nil
		},
	}

	cmd.Flags().StringVarP(&gradesJSON, "grades", "g", "", "Grade values as JSON, keyed by scale name")
	cmd.Flags().StringVar(&contextFlag, "context", "", "Grade context (default from belay.yml, else US)")

	return cmd
}

func newContextsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contexts",
		Short: "List grade contexts and the scale used for each discipline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := opts.config.ContextTable()
			out := cmd.OutOrStdout()
			for _, ctx := range table.Contexts() {
				marker := ""
				if strings.EqualFold(string(ctx), opts.config.DefaultContext) {
					marker = " (default)"
				}
				fmt.Fprintf(out, "%s%s\n", ctx, marker)

				scales := table[ctx]
				for _, k := range discipline.Keys {
					if name, ok := scales[k]; ok {
						fmt.Fprintf(out, "  %-14s %s\n", k, name)
					}
				}
			}
			return nil
		},
	}
}
