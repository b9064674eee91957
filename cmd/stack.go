package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/key"
	"github.com/stackcalc/stackcalc/repl"
	"github.com/stackcalc/stackcalc/rpn"
	"github.com/stackcalc/stackcalc/session"
	"github.com/stackcalc/stackcalc/stack"
	"github.com/stackcalc/stackcalc/util"
)

// withSession loads the session stack, runs fn and saves the result.
// Nothing is saved when fn fails.
func withSession(fn func(s *stack.Stack) error) error {
	s, err := session.Load()
	if err != nil {
		return err
	}

	if err := fn(s); err != nil {
		return err
	}

	return session.Save(s)
}

func format(v float64) string {
	return rpn.Format(v, viper.GetInt(key.RPNPrecision))
}

// parseValues reads push arguments the way the calculator reads number tokens.
func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := rpn.ParseNumber(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values[i] = v
	}
	return values, nil
}

func init() {
	rootCmd.AddCommand(pushCmd)
}

// pushCmd stores values on the session stack.
var pushCmd = &cobra.Command{
	Use:   "push [--] <value>...",
	Short: "Push values onto the stack",
	Long: `Push values onto the stack in the order given.
Either every value fits or none is pushed. Separate negative values from flags with "--".`,
	Example: "  stackcalc push 1 2.5\n  stackcalc push -- -4",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		values, err := parseValues(args)
		handleErr(err)

		handleErr(withSession(func(s *stack.Stack) error {
			if room := s.Cap() - s.Len(); len(values) > room {
				return fmt.Errorf("pushing %s with room for %d: %w", util.Quantify(len(values), "value", "values"), room, stack.ErrOverflow)
			}

			for _, v := range values {
				lo.Must0(s.Push(v))
			}

			cmd.Println(repl.RenderStatus(s))
			return nil
		}))
	},
}

func init() {
	rootCmd.AddCommand(popCmd)
	popCmd.Flags().IntP("count", "n", 1, "Number of values to pop")
}

// popCmd removes values from the top of the session stack.
var popCmd = &cobra.Command{
	Use:   "pop",
	Short: "Pop values off the stack and print them, topmost first",
	Run: func(cmd *cobra.Command, args []string) {
		count := lo.Must(cmd.Flags().GetInt("count"))
		if count < 1 {
			handleErr(fmt.Errorf("count must be positive, got %d", count))
		}

		handleErr(withSession(func(s *stack.Stack) error {
			if s.Len() < count {
				return fmt.Errorf("popping %s from %d: %w", util.Quantify(count, "value", "values"), s.Len(), stack.ErrUnderflow)
			}

			for i := 0; i < count; i++ {
				cmd.Println(format(lo.Must(s.Pop())))
			}
			return nil
		}))
	},
}

func init() {
	rootCmd.AddCommand(peekCmd)
}

// peekCmd prints the topmost value without removing it.
var peekCmd = &cobra.Command{
	Use:   "peek",
	Short: "Print the topmost value without removing it",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := session.Load()
		handleErr(err)

		top, err := s.Peek()
		handleErr(err)
		cmd.Println(format(top))
	},
}

// Status describes the occupancy of a stack.
type Status struct {
	Len      int  `json:"len"`
	Capacity int  `json:"capacity"`
	Top      int  `json:"top"`
	Full     bool `json:"full"`
	Empty    bool `json:"empty"`
}

func newStatus(s *stack.Stack) Status {
	return Status{
		Len:      s.Len(),
		Capacity: s.Cap(),
		Top:      s.Top(),
		Full:     s.IsFull(),
		Empty:    s.IsEmpty(),
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

// statusCmd reports whether the stack is full or empty.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report how full the stack is",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := session.Load()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(newStatus(s)))
			return
		}

		cmd.Println(repl.RenderStatus(s))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("raw", "r", false, "Print one value per line, bottom first")
}

// showCmd prints the stack contents.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the stack contents",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := session.Load()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, v := range s.Values() {
				cmd.Println(format(v))
			}
			return
		}

		cmd.Println(repl.RenderStatus(s))
		cmd.Println(repl.RenderStack(s, viper.GetInt(key.RPNPrecision)))
	},
}
