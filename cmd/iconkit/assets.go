package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type assetsOptions struct {
	jsonOutput bool
}

func newAssetsCmd(root *rootFlags) *cobra.Command {
	opts := &assetsOptions{}

	cmd := &cobra.Command{
		Use:   "assets <bundle>",
		Short: "Cross-reference a bundle's asset catalog against the document's image references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssets(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the cross-reference as JSON")

	return cmd
}

func runAssets(cmd *cobra.Command, root *rootFlags, path string, opts *assetsOptions) error {
	bundle, _, err := loadWorkspace(root, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading document: %v\n", err)
		os.Exit(2)
	}

	referenced := bundle.Document.ReferencedAssets()

	var missing []string
	for _, name := range referenced {
		if !bundle.Catalog.Contains(name) {
			missing = append(missing, name)
		}
	}
	unreferenced := bundle.Catalog.Unreferenced(referenced)

	if opts.jsonOutput {
		payload := assetsJSONPayload{
			Available:    bundle.Catalog.Names(),
			Referenced:   referenced,
			Missing:      missing,
			Unreferenced: unreferenced,
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(payload); err != nil {
			return err
		}
	} else {
		renderAssetsTable(cmd, referenced, missing, unreferenced)
	}

	if len(missing) > 0 {
		os.Exit(1)
	}
	return nil
}

type assetsJSONPayload struct {
	Available    []string `json:"available"`
	Referenced   []string `json:"referenced"`
	Missing      []string `json:"missing,omitempty"`
	Unreferenced []string `json:"unreferenced,omitempty"`
}

func renderAssetsTable(cmd *cobra.Command, referenced, missing, unreferenced []string) {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ASSET\tSTATE")

	missingSet := make(map[string]struct{}, len(missing))
	for _, name := range missing {
		missingSet[name] = struct{}{}
	}

	for _, name := range referenced {
		state := "ok"
		if _, ok := missingSet[name]; ok {
			state = "missing"
		}
		fmt.Fprintf(writer, "%s\t%s\n", name, state)
	}
	for _, name := range unreferenced {
		fmt.Fprintf(writer, "%s\tunreferenced\n", name)
	}

	writer.Flush()
}
