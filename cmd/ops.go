package cmd

import (
	"fmt"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stackcalc/stackcalc/color"
	"github.com/stackcalc/stackcalc/rpn"
	"github.com/stackcalc/stackcalc/style"
	"github.com/stackcalc/stackcalc/util"
)

func init() {
	rootCmd.AddCommand(opsCmd)
	opsCmd.Flags().IntP("width", "w", 60, "Wrap descriptions at this width")
}

// opsCmd lists the words the calculator understands.
var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the operators and constants the calculator understands",
	Run: func(cmd *cobra.Command, args []string) {
		width := lo.Must(cmd.Flags().GetInt("width"))

		for _, op := range rpn.Operators() {
			var arity string
			if op.Arity < 0 {
				arity = "all values"
			} else {
				arity = util.Quantify(op.Arity, "value", "values")
			}

			cmd.Printf("%s %s\n",
				style.New().Bold(true).Foreground(color.HiPurple).Render(fmt.Sprintf("%-5s", op.Symbol)),
				style.Fg(color.Yellow)(fmt.Sprintf("pops %s, pushes %d", arity, op.Yield)),
			)
			cmd.Println(indent.String(style.Faint(wordwrap.String(op.Description, width)), 6))
		}

		cmd.Printf("%s %s\n",
			style.New().Bold(true).Foreground(color.HiCyan).Render("pi e "),
			style.Fg(color.Yellow)("constants, pushed like numbers"),
		)
	},
}
