package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/configvault/config-vault/pkg/changelog"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Inspect the project changelog",
	Long:  `Parse, validate, and extract entries from the Keep a Changelog formatted CHANGELOG.md.`,
}

var changelogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the changelog follows Keep a Changelog conventions",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readChangelog(cmd)
		if err != nil {
			return err
		}

		report := changelog.Validate(source)
		if report.OK() {
			fmt.Println("Changelog is valid")
			return nil
		}

		fmt.Printf("Found %d issue(s):\n\n", len(report.Problems))
		for _, p := range report.Problems {
			if p.Line > 0 {
				fmt.Printf("  Line %d: %s\n", p.Line, p.Message)
			} else {
				fmt.Printf("  %s\n", p.Message)
			}
		}
		os.Exit(1)
		return nil
	},
}

var changelogShowCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "Print a version's changelog entry",
	Long: `Print the changelog entry for a version, with or without a "v" prefix.
Without an argument the most recent released version is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readChangelog(cmd)
		if err != nil {
			return err
		}

		c, err := changelog.Parse(source)
		if err != nil {
			return fmt.Errorf("parsing changelog: %w", err)
		}

		var entry *changelog.Entry
		if len(args) == 1 {
			if entry = c.Find(args[0]); entry == nil {
				return fmt.Errorf("version %s not found in changelog", args[0])
			}
		} else if entry = c.Latest(); entry == nil {
			return fmt.Errorf("changelog has no released versions")
		}

		if entry.Date != "" {
			fmt.Printf("## [%s] - %s\n\n", entry.Version, entry.Date)
		} else {
			fmt.Printf("## [%s]\n\n", entry.Version)
		}
		fmt.Print(stripLinkDefinitions(entry.Body))

		if url, ok := c.Links[entry.Version]; ok {
			fmt.Printf("\n\n[%s]: %s\n", entry.Version, url)
		}
		return nil
	},
}

var changelogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all versions in the changelog",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readChangelog(cmd)
		if err != nil {
			return err
		}

		c, err := changelog.Parse(source)
		if err != nil {
			return fmt.Errorf("parsing changelog: %w", err)
		}

		for _, entry := range c.Entries {
			if entry.Date != "" {
				fmt.Printf("%s (%s)\n", entry.Version, entry.Date)
			} else {
				fmt.Println(entry.Version)
			}
		}
		return nil
	},
}

var linkDefLine = regexp.MustCompile(`^\[[^\]]+\]:\s+\S+\s*$`)

func stripLinkDefinitions(body string) string {
	var kept []string
	for _, line := range strings.Split(body, "\n") {
		if !linkDefLine.MatchString(line) {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func readChangelog(cmd *cobra.Command) ([]byte, error) {
	file, _ := cmd.Flags().GetString("file")
	source, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading changelog: %w", err)
	}
	return source, nil
}

func init() {
	changelogCmd.PersistentFlags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")

	changelogCmd.AddCommand(changelogValidateCmd)
	changelogCmd.AddCommand(changelogShowCmd)
	changelogCmd.AddCommand(changelogListCmd)
	rootCmd.AddCommand(changelogCmd)
}
