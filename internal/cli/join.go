package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"whalestreet_ai_server/internal/gamecode"
	"whalestreet_ai_server/internal/utils"
)

var joinCmd = &cobra.Command{
	Use:   "join [files...]",
	Short: "Join markup, styles and script into one document",
	Long: `Assembles an HTML5 document from separate files. Each file may be omitted
and is then treated as empty. Positional arguments are sorted into markup,
styles or script by extension.`,
	RunE: runJoin,
}

// Flags for the join command.
var (
	joinHTML string
	joinCSS  string
	joinJS   string
	joinOut  string
)

func init() {
	joinCmd.Flags().StringVar(&joinHTML, "html", "", "Markup file")
	joinCmd.Flags().StringVar(&joinCSS, "css", "", "Stylesheet file")
	joinCmd.Flags().StringVar(&joinJS, "js", "", "Script file")
	joinCmd.Flags().StringVarP(&joinOut, "out", "o", "", "Write the document to this file instead of stdout")
	rootCmd.AddCommand(joinCmd)
}

func runJoin(cmd *cobra.Command, args []string) error {
	paths := map[utils.FragmentKind]string{
		utils.FragmentMarkup: joinHTML,
		utils.FragmentStyles: joinCSS,
		utils.FragmentScript: joinJS,
	}
	for _, arg := range args {
		kind := utils.DetermineFragmentKind(arg)
		if kind == utils.FragmentUnknown {
			return fmt.Errorf("cannot tell whether %s is markup, styles or script", arg)
		}
		if paths[kind] != "" {
			return fmt.Errorf("more than one %s file given", kind)
		}
		paths[kind] = arg
	}

	var f gamecode.FragmentSet
	for kind, dst := range map[utils.FragmentKind]*string{
		utils.FragmentMarkup: &f.Markup,
		utils.FragmentStyles: &f.Styles,
		utils.FragmentScript: &f.Script,
	} {
		if paths[kind] == "" {
			continue
		}
		content, err := readInput(cmd, paths[kind])
		if err != nil {
			return err
		}
		*dst = content
	}

	document := gamecode.FormatSet(f)
	if joinOut == "" {
		fmt.Fprintln(cmd.OutOrStdout(), document)
		return nil
	}
	if err := os.WriteFile(joinOut, []byte(document+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", joinOut, err)
	}
	return nil
}
