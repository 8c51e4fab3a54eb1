package main

import (
	"fmt"
	"log"
	"net"

	"shelf/internal/client"
	"shelf/internal/config"
	"shelf/internal/items"
	"shelf/internal/tui"

	"github.com/spf13/cobra"
)

var viewURL string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Launch the interactive item viewer",
	Long: `Launch a BubbleTea terminal UI that fetches the item collection once
from a running shelf server and renders one row per item.

The viewer reads the server's config file (--config) to derive the URL
automatically; --url overrides it.

Key bindings:
  r               Reload (fresh fetch)
  PageUp/PageDown Scroll
  q, Ctrl+C       Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		effectiveURL := viewURL

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

		return tui.Run(client.New(effectiveURL), effectiveURL)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewURL, "url", "", "Server base URL (default: derived from --config)")
}

// serverURLFromListenAddr derives a client base URL from a listen address.
// ":8080" and "0.0.0.0:8080" both map to "http://localhost:8080".
func serverURLFromListenAddr(addr string) string {
	if addr == "" {
		return ""
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%s", host, port)
}

// collectionFetcherFactory adapts a fixed collection into per-session
// viewer fetchers for the SSH server.
func collectionFetcherFactory(collection items.Collection) func() tui.ItemFetcher {
	return func() tui.ItemFetcher {
		return collection
	}
}
