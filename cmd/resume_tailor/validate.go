package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON artifact against one of the published schemas",
	Long:  "Validate a JSON file against a JSON Schema. By default the tailoring result schema is used; pass --schema to validate intermediate artifacts (profile, job posting, match result) or any schema file.",
	RunE:  runValidate,
}

var (
	validateJSONPath   string
	validateSchemaPath string
)

func init() {
	validateCmd.Flags().StringVarP(&validateJSONPath, "json", "j", "", "Path to the JSON file to validate (required)")
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "schemas/tailoring_result.schema.json", "Schema file to validate against")
	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	schemaPath := schemas.ResolveSchemaPath(validateSchemaPath)
	if schemaPath == "" {
		return fmt.Errorf("schema file not found: %s", validateSchemaPath)
	}

	if err := schemas.ValidateJSON(schemaPath, validateJSONPath); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintf(os.Stderr, "%s is not valid:\n", validateJSONPath)
			for _, fieldErr := range validationErr.Errors {
				fmt.Fprintf(os.Stderr, "  - %s: %s\n", fieldErr.Field, fieldErr.Message)
			}
			return fmt.Errorf("validation failed with %d error(s)", len(validationErr.Errors))
		}
		return err
	}

	fmt.Fprintf(os.Stdout, "%s is valid against %s\n", validateJSONPath, schemaPath)
	return nil
}
