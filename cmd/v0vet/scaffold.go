package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vuetools/v0vet/internal/scaffold"
)

var (
	scType          string
	scOutput        string
	scName          string
	scSelectionType string
	scParams        []string
)

// scaffoldCmd generates composable boilerplate.
var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate a v0 composable pattern",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := scaffold.Params{}
		for _, kv := range scParams {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				return fmt.Errorf("bad --param %q (use key=value)", kv)
			}
			params[k] = v
		}
		if scName != "" {
			params["name"] = scName
		}
		if scSelectionType != "" {
			params["selection_type"] = scSelectionType
		}

		path, err := scaffold.Generate(scType, scOutput, params)
		if err != nil {
			return err
		}
		fmt.Printf("✅ Generated %s pattern: %s\n", scType, path)
		return nil
	},
}

func init() {
	scaffoldCmd.Flags().StringVar(&scType, "type", "", "Pattern type: "+strings.Join(scaffold.Types(), "|"))
	scaffoldCmd.Flags().StringVar(&scOutput, "output", "", "Output file path")
	scaffoldCmd.Flags().StringVar(&scName, "name", "", "Custom name for the exported symbol")
	scaffoldCmd.Flags().StringVar(&scSelectionType, "selection-type", "", "Selection subtype: single|multi|group (default multi)")
	scaffoldCmd.Flags().StringArrayVar(&scParams, "param", nil, "Extra named parameter key=value (repeatable)")
	_ = scaffoldCmd.MarkFlagRequired("type")
	_ = scaffoldCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(scaffoldCmd)
}
