package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stackcalc/stackcalc/repl"
	"github.com/stackcalc/stackcalc/rpn"
	"github.com/stackcalc/stackcalc/session"
	"github.com/stackcalc/stackcalc/stack"
	"github.com/stackcalc/stackcalc/util"
)

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().BoolP("fresh", "f", false, "Evaluate on an empty stack and leave the session untouched")
	evalCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

// evalCmd evaluates an RPN expression against the session stack.
var evalCmd = &cobra.Command{
	Use:   "eval [--] [expression...]",
	Short: "Evaluate a reverse Polish notation expression",
	Long: `Evaluate a reverse Polish notation expression against the stack.
Without arguments the expression is read line by line from a pipe.
If any line fails, none of them is applied. Run "stackcalc ops" for the list of operators.`,
	Example: "  stackcalc eval 3 4 + 2 '*'\n  echo '1 2 swap -' | stackcalc eval --fresh",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			fresh  = lo.Must(cmd.Flags().GetBool("fresh"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			lines  []string
		)

		switch {
		case len(args) > 0:
			lines = []string{strings.Join(args, " ")}
		case util.IsPiped():
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					lines = append(lines, line)
				}
			}
			handleErr(scanner.Err())
		}

		if len(lines) == 0 {
			handleErr(rpn.ErrEmptyExpression)
		}

		var s *stack.Stack
		if fresh {
			s = stack.New(session.Capacity())
		} else {
			var err error
			s, err = session.Load()
			handleErr(err)
		}

		calc := rpn.New(s)
		evalErr := calc.EvalLines(lines)

		if evalErr == nil && !fresh {
			handleErr(session.Save(s))
		}

		if asJson {
			out := rpn.NewOutput(strings.Join(lines, "\n"), calc, evalErr)
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(out))
			if evalErr != nil {
				os.Exit(1)
			}
			return
		}

		handleErr(evalErr)

		result, err := calc.Result()
		if errors.Is(err, stack.ErrUnderflow) {
			cmd.Println("empty")
			return
		}
		cmd.Println(format(result))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// replCmd starts the interactive calculator.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive calculator on the session stack",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(repl.Run())
	},
}
