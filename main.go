// genreadme generates the profile README.md from live GitHub repo
// data: REST for the profile and repo listing, GraphQL for pinned
// repos (with a gh CLI fallback), curated category tables for layout.
//
// Usage:
//
//	GITHUB_TOKEN=<YOUR_TOKEN> go run . [username] [output]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultUsername = "AlanRockefeller"
	defaultOutput   = "README.md"

	genTimeout = 2 * time.Minute
)

var dryRun bool

var rootCmd = &cobra.Command{
	Use:   "genreadme [username] [output]",
	Short: "Generate a GitHub profile README.md from live repo data",
	Long: `genreadme queries GitHub for a user's profile and repositories, groups
the repos under curated category headings (uncurated ones are ranked by
stars and recency), and writes the result as a static README.md.

Pinned repos are fetched best-effort: authenticated GraphQL when
GITHUB_TOKEN is set, otherwise through the gh CLI's existing auth.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		username := defaultUsername
		if len(args) >= 1 {
			username = args[0]
		}
		output := defaultOutput
		if len(args) >= 2 {
			output = args[1]
		}
		return run(cmd.Context(), username, output)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the document to stdout instead of writing it")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, username, output string) error {
	platform := NewGitHub(githubToken())

	log.Printf("Fetching data for %s", username)
	readme, err := Generate(ctx, platform, username, time.Now())
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Print(readme)
		log.Printf("(dry run, not writing to %s)", output)
		return nil
	}

	if err := os.WriteFile(output, []byte(readme), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	log.Printf("Wrote %s for %s", output, username)
	return nil
}

// githubToken reads GITHUB_TOKEN. A token with embedded whitespace is
// almost certainly a paste error; warn and run unauthenticated.
func githubToken() string {
	token := strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	if strings.ContainsFunc(token, unicode.IsSpace) {
		log.Print("Warning: GITHUB_TOKEN contains whitespace, ignoring it")
		return ""
	}
	return token
}
