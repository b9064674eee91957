// Package cmd implements the command-line interface for stackcalc.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/color"
	"github.com/stackcalc/stackcalc/constant"
	"github.com/stackcalc/stackcalc/icon"
	"github.com/stackcalc/stackcalc/key"
	"github.com/stackcalc/stackcalc/log"
	"github.com/stackcalc/stackcalc/repl"
	"github.com/stackcalc/stackcalc/stack"
	"github.com/stackcalc/stackcalc/style"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().IntP("capacity", "C", stack.DefaultCapacity, "Maximum number of values the stack holds")
	lo.Must0(viper.BindPFlag(key.StackCapacity, rootCmd.PersistentFlags().Lookup("capacity")))

	rootCmd.PersistentFlags().IntP("precision", "p", -1, "Digits shown after the decimal point (-1 for shortest)")
	lo.Must0(viper.BindPFlag(key.RPNPrecision, rootCmd.PersistentFlags().Lookup("precision")))

	rootCmd.PersistentFlags().Bool("persist", true, "Keep the stack between invocations")
	lo.Must0(viper.BindPFlag(key.SessionPersist, rootCmd.PersistentFlags().Lookup("persist")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.SetOut(os.Stdout)
}

// rootCmd starts the interactive calculator when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   constant.Stackcalc,
	Short: "A bounded operand stack and RPN calculator",
	Long: constant.AsciiArtLogo + "\n\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A bounded operand stack and RPN calculator"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(repl.Run())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
