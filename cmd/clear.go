package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stackcalc/stackcalc/icon"
	"github.com/stackcalc/stackcalc/session"
	"github.com/stackcalc/stackcalc/util"
)

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

// clearCmd discards the persisted stack.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard every value on the session stack",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) {
			if util.IsPiped() {
				handleErr(errors.New("refusing to clear without --yes when stdin is not a terminal"))
			}

			var confirm bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: "Discard the session stack?",
				Default: false,
			}, &confirm))

			if !confirm {
				return
			}
		}

		e := util.PrintErasable(fmt.Sprintf("%s Clearing session...", icon.Get(icon.Progress)))
		err := session.Reset()
		e()
		handleErr(err)

		cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize("session"))
	},
}
