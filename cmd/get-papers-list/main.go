// Command get-papers-list searches PubMed and reports papers with at
// least one author from outside academia.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohan-31743/pubmed-paper-fetcher/internal/eutils"
	"github.com/mohan-31743/pubmed-paper-fetcher/internal/logger"
	"github.com/mohan-31743/pubmed-paper-fetcher/internal/output"
	"github.com/mohan-31743/pubmed-paper-fetcher/internal/papers"
)

var (
	flagFile   string
	flagDebug  bool
	flagLimit  int
	flagAPIKey string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "get-papers-list <query>",
	Short: "Find PubMed papers with industry-affiliated authors",
	Long: `Searches PubMed for a query, fetches the summary of every matching
paper, and reports the ones whose authors sit outside academia, judged
by affiliation keywords. Results print to the console, or to a CSV
report with --file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFlags(); err != nil {
			return err
		}
		if flagDebug {
			logger.SetLevel(logger.LevelDebug)
		}

		records := papers.Fetch(cmd.Context(), newClient(), buildQuery(args), flagLimit)
		return output.Write(os.Stdout, records, output.Config{File: flagFile})
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Write results to this CSV file instead of the console")
	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().IntVar(&flagLimit, "limit", eutils.DefaultRetMax, "Maximum number of papers to fetch")
	rootCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "NCBI API key (or set NCBI_API_KEY env var)")
}

func validateFlags() error {
	if flagLimit < 1 {
		return fmt.Errorf("--limit must be at least 1, got %d", flagLimit)
	}
	return nil
}

// newClient builds the E-utilities client, resolving the API key from
// the --api-key flag or the NCBI_API_KEY environment variable. Without
// a key the client runs keyless.
func newClient() *eutils.Client {
	apiKey := flagAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("NCBI_API_KEY")
	}
	var opts []eutils.Option
	if apiKey != "" {
		opts = append(opts, eutils.WithAPIKey(apiKey))
	}
	return eutils.NewClient(opts...)
}

func buildQuery(args []string) string {
	return strings.Join(args, " ")
}
