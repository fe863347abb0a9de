package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "htmldot",
	Short: "An HTML5 parser and Document Object Tree inspector",
	Long: `htmldot parses HTML5 documents and fragments according to the
WHATWG tree-construction algorithm, building a Document Object Tree you
can serialize, query, or inspect for parse errors.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (compliance_level, scripting_enabled, iframe_srcdoc)")
}
