package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/htmldot"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [html_file]",
	Short: "Parse an HTML file and print its Document Object Tree",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			os.Exit(1)
		}

		doc, errs := htmldot.NewParser(cfg).Parse(string(data))
		printTree(os.Stdout, doc, 0)
		if len(errs) > 0 {
			fmt.Printf("\n%d parse error(s):\n", len(errs))
			for _, e := range errs {
				fmt.Printf("  %s\n", e.Error())
			}
		}
	},
}

func loadConfig() (htmldot.Config, error) {
	if configPath == "" {
		return htmldot.NewConfig(htmldot.WithComplianceLevel(domerr.Strict)), nil
	}
	return htmldot.LoadConfigYAML(configPath)
}

func printTree(w *os.File, n dot.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *dot.Document:
		fmt.Fprintln(w, "#document")
	case *dot.DocumentType:
		fmt.Fprintf(w, "%s<!DOCTYPE %s>\n", indent, v.Name)
	case *dot.Element:
		fmt.Fprintf(w, "%s<%s>", indent, v.QualifiedName())
		for _, a := range v.Attributes.Items() {
			fmt.Fprintf(w, " %s=%q", a.QualifiedName(), a.Value())
		}
		fmt.Fprintln(w)
	case *dot.Text:
		fmt.Fprintf(w, "%s#text %q\n", indent, v.Data())
	case *dot.Comment:
		fmt.Fprintf(w, "%s<!-- %s -->\n", indent, v.Data())
	}
	for _, c := range n.Children() {
		printTree(w, c, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
