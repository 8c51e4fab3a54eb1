package main

import (
	"context"
	"fmt"
	"log"

	"shelf/internal/client"
	"shelf/internal/config"

	"github.com/spf13/cobra"
)

var itemsURL string

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Fetch the item collection once and print it",
	Long: `Fetch the item collection from a running shelf server with a single
GET request and print one item per line, in server order. Useful for
scripting and for checking a deployment without the interactive viewer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		effectiveURL := itemsURL

		if !cmd.Flags().Changed("url") {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				log.Printf("Warning: could not read config %s: %v (using default URL)", cfgFile, err)
			} else {
				effectiveURL = serverURLFromListenAddr(cfg.ListenAddr)
			}
		}
		if effectiveURL == "" {
			effectiveURL = "http://localhost:8080"
		}

		found, err := client.New(effectiveURL).FetchItems(context.Background())
		if err != nil {
			return fmt.Errorf("could not fetch items from %s: %w", effectiveURL, err)
		}

		for _, item := range found {
			fmt.Println(item)
		}
		return nil
	},
}

func init() {
	itemsCmd.Flags().StringVar(&itemsURL, "url", "", "Server base URL (default: derived from --config)")
}
