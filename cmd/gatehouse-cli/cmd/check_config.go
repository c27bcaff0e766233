package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfrund/gatehouse/internal/config"
)

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Load the environment and report what the server would run with",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Configuration OK")
		fmt.Printf("  listen address: %s\n", cfg.Addr)
		fmt.Printf("  base URL:       %s\n", cfg.BaseURL)
		fmt.Printf("  surreal URL:    %s\n", cfg.DBUrl)
		fmt.Printf("  surreal ns/db:  %s/%s\n", cfg.DBNs, cfg.DBDb)
		fmt.Printf("  surreal access: %s\n", cfg.DBAccess)
	},
}

func init() {
	rootCmd.AddCommand(checkConfigCmd)
}
