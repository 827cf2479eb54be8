package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aeastr/iconkit/internal/validate"
)

type validateOptions struct {
	jsonOutput bool
}

var validateCmdRunner = runValidate

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <bundle-or-icon.json>",
		Short: "Check a document against structural limits, value ranges, and its asset catalog",
		Long: `Validate parses a .icon bundle (or a bare icon.json file), accumulates every
violation instead of stopping at the first, and reports them all. Exit code 0
means the document is acceptable to persist; warnings alone do not fail it.
Exit code 1 means error-severity findings exist, 2 means the document could
not be parsed at all.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateCmdRunner(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output findings as JSON")

	return cmd
}

func runValidate(cmd *cobra.Command, root *rootFlags, path string, opts *validateOptions) error {
	log, err := newLogger(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(3)
	}

	bundle, settings, err := loadWorkspace(root, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading document: %v\n", err)
		os.Exit(2)
	}

	log.With("bundle", bundle.Path).Debug("document parsed")

	report := validate.Document(bundle.Document, validate.Options{
		Limits: settings.Limits,
		Assets: bundle.Catalog,
	})

	if opts.jsonOutput {
		if err := renderValidateJSON(cmd, &report); err != nil {
			return err
		}
	} else {
		renderValidateText(cmd, &report)
	}

	if !report.OK() {
		os.Exit(1)
	}
	return nil
}

func renderValidateText(cmd *cobra.Command, report *validate.Report) {
	if len(report.Findings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Document is valid.")
		return
	}

	useUnicode := supportsUnicode(cmd.OutOrStdout())
	for _, finding := range report.Findings {
		mark := severityMark(string(finding.Severity), useUnicode)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", mark, finding.Field, finding.Message)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d error(s), %d warning(s)\n", len(report.Errors()), len(report.Warnings()))
}

type validateJSONFinding struct {
	Severity string `json:"severity"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

type validateJSONPayload struct {
	OK       bool                  `json:"ok"`
	Findings []validateJSONFinding `json:"findings"`
}

func renderValidateJSON(cmd *cobra.Command, report *validate.Report) error {
	payload := validateJSONPayload{
		OK:       report.OK(),
		Findings: make([]validateJSONFinding, len(report.Findings)),
	}
	for i, finding := range report.Findings {
		payload.Findings[i] = validateJSONFinding{
			Severity: string(finding.Severity),
			Field:    finding.Field,
			Message:  finding.Message,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
