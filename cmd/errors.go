package cmd

import (
	"fmt"
	"os"

	"github.com/arbor-dot/htmldot/htmldot"
	"github.com/spf13/cobra"
)

var errorsCmd = &cobra.Command{
	Use:   "errors [html_file]",
	Short: "Parse an HTML file and print only its recorded parse errors",
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

		_, errs := htmldot.NewParser(cfg).Parse(string(data))
		if len(errs) == 0 {
			fmt.Println("no parse errors")
			return
		}
		for _, e := range errs {
			fmt.Println(e.Error())
		}
	},
}

func init() {
	rootCmd.AddCommand(errorsCmd)
}
