package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salesq/salesq/internal/errors"
	"github.com/salesq/salesq/internal/translate"
)

var translateJSON bool

var translateCmd = &cobra.Command{
	Use:   "translate <question>",
	Short: "Translate a question to SQL without executing it",
	Long: `Translate a plain-English question into SQL and print the query plus a
one-sentence explanation. Nothing is executed and no database is opened.

Examples:
  salesq translate "total sales by region in February"
  salesq translate --json "top 5 customers by revenue"`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().BoolVar(&translateJSON, "json", false, "Emit the result as JSON")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(_ *cobra.Command, args []string) error {
	question := strings.TrimSpace(args[0])
	if question == "" {
		return errors.New(errors.ErrTypeValidation, "question must not be empty")
	}

	result := translate.Translate(question)

	if translateJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.Wrap(err, errors.ErrTypeInternal, "failed to marshal result")
		}

		fmt.Println(string(data))

		return nil
	}

	fmt.Printf("SQL: %s\n", result.SQL)
	fmt.Printf("%s\n", result.Explanation)

	return nil
}
