package cmd

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stackcalc/stackcalc/rpn"
	"github.com/stackcalc/stackcalc/session"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("session", "s", false, "Generate the JSON Schema of the persisted session instead")
	schemaCmd.Flags().Bool("status", false, "Generate the JSON Schema of status --json instead")
	schemaCmd.MarkFlagsMutuallyExclusive("session", "status")
}

// schemaCmd generates JSON schemas for the structured outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for eval --json, status --json and the session file",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		var schema *jsonschema.Schema
		switch {
		case lo.Must(cmd.Flags().GetBool("session")):
			schema = reflector.Reflect(&session.Snapshot{})
		case lo.Must(cmd.Flags().GetBool("status")):
			schema = reflector.Reflect(&Status{})
		default:
			schema = reflector.Reflect(&rpn.Output{})
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
