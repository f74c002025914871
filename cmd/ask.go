package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salesq/salesq/internal/config"
	"github.com/salesq/salesq/internal/errors"
	"github.com/salesq/salesq/internal/formatter"
	"github.com/salesq/salesq/internal/logging"
	"github.com/salesq/salesq/internal/storage"
	"github.com/salesq/salesq/internal/translate"
)

var (
	askSQLOnly     bool
	askNoChart     bool
	askInteractive bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Translate a question to SQL and run it against the orders table",
	Long: `Translate a plain-English question into SQL, execute it, and print the
results as a table (plus a bar chart when the result shape allows).

Examples:
  salesq ask "total sales by region"
  salesq ask "top 5 customers by revenue"
  salesq ask "how many orders in February"
  salesq ask --sql-only "average amount by category"
  salesq ask --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askSQLOnly, "sql-only", false, "Print the generated SQL without executing it")
	askCmd.Flags().BoolVar(&askNoChart, "no-chart", false, "Suppress the bar chart")
	askCmd.Flags().BoolVarP(&askInteractive, "interactive", "i", false, "Read questions from stdin until EOF")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := getConfig()
	if err != nil {
		return err
	}

	if askNoChart {
		cfg.Output.ChartsEnabled = false
	}

	if askInteractive {
		return runAskInteractive(ctx, cfg)
	}

	if len(args) == 0 {
		return errors.New(errors.ErrTypeValidation,
			"provide a question, or use --interactive to read from stdin")
	}

	question := strings.TrimSpace(args[0])
	if question == "" {
		return errors.New(errors.ErrTypeValidation, "question must not be empty")
	}

	return askOnce(ctx, cfg, question)
}

func runAskInteractive(ctx context.Context, cfg *config.Config) error {
	fmt.Println("Ask questions about the orders table. Ctrl-D to exit.")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")

		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}

		if question == "exit" || question == "quit" {
			break
		}

		if err := askOnce(ctx, cfg, question); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		fmt.Println()
	}

	return scanner.Err()
}

func askOnce(ctx context.Context, cfg *config.Config, question string) error {
	logger := logging.GetLogger()

	result := translate.Translate(question)

	logger.WithFields(map[string]interface{}{
		"question": question,
		"sql":      result.SQL,
	}).Debug("translated question")

	fmt.Printf("SQL: %s\n", result.SQL)
	fmt.Printf("%s\n", result.Explanation)

	if askSQLOnly {
		return nil
	}

	repo, err := initializeStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	count, err := ensureData(ctx, cfg, repo)
	if err != nil {
		return err
	}

	if count == 0 {
		fmt.Println("\nNo data loaded. Run 'salesq load' to load a dataset.")
		return nil
	}

	rs, err := repo.Execute(ctx, result.SQL)
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "query execution failed")
	}

	fmt.Println()
	printResultSet(cfg, rs)

	return nil
}

// printResultSet renders a result set as a table, followed by a bar chart
// when charts are enabled and the shape supports one.
func printResultSet(cfg *config.Config, rs *storage.ResultSet) {
	f := formatter.NewFormatter(cfg.Output.MaxTableRows, cfg.Output.ChartWidth)

	fmt.Print(f.FormatTable(rs))

	if cfg.Output.ChartsEnabled && f.CanChart(rs) {
		fmt.Println()
		fmt.Print(f.FormatChart(rs))
	}
}
