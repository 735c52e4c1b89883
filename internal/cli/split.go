package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"whalestreet_ai_server/internal/gamecode"
)

// Output file names written by split and read by default by join.
const (
	markupFile = "index.html"
	stylesFile = "style.css"
	scriptFile = "game.js"
)

var splitCmd = &cobra.Command{
	Use:   "split [file|-]",
	Short: "Split a combined document into markup, styles and script",
	Long: `Reads a combined HTML document from a file (or stdin with "-") and writes
index.html, style.css and game.js into --out. Without --out the three
sections are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

// splitOutDir is a flag for the split command.
var splitOutDir string

func init() {
	splitCmd.Flags().StringVarP(&splitOutDir, "out", "o", "", "Directory to write the fragment files into")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	document, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	f := gamecode.Parse(document)

	if splitOutDir == "" {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "--- %s ---\n%s\n", markupFile, f.Markup)
		fmt.Fprintf(out, "--- %s ---\n%s\n", stylesFile, f.Styles)
		fmt.Fprintf(out, "--- %s ---\n%s\n", scriptFile, f.Script)
		return nil
	}

	if err := os.MkdirAll(splitOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for name, content := range map[string]string{
		markupFile: f.Markup,
		stylesFile: f.Styles,
		scriptFile: f.Script,
	} {
		path := filepath.Join(splitOutDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s, %s and %s to %s\n", markupFile, stylesFile, scriptFile, splitOutDir)
	return nil
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}
