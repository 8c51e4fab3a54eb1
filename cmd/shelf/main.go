package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shelf/internal/config"
	"shelf/internal/items"
	"shelf/internal/server"
	internalssh "shelf/internal/ssh"
	"shelf/internal/version"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	verbose    bool
	listenAddr string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Shelf - serves a fixed item collection over HTTP",
	Long: `Shelf serves a fixed, ordered collection of items as a JSON array
over HTTP and ships its own terminal viewer.

Run "shelf server" to start serving, "shelf view" to browse a running
server interactively, or "shelf items" to print the collection once.`,
	Version: version.Full(),
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the shelf server",
	Long: `Start the shelf HTTP server. The item collection is fixed at startup,
either from the built-in defaults or from the items_file configured in the
config file, and never changes for the lifetime of the process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("shelf %s\n", version.Full())
		buildInfo := version.GetBuildInfo()

		if buildInfo.GitCommit != "unknown" {
			fmt.Printf("Git commit: %s\n", buildInfo.GitCommit)
		}
		if buildInfo.BuildDate != "unknown" {
			fmt.Printf("Build date: %s\n", buildInfo.BuildDate)
		}
		fmt.Printf("Go version: %s\n", buildInfo.GoVersion)

		return nil
	},
}

func init() {
	cobra.OnInitialize(initLogging)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.json", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Server command flags
	serverCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "HTTP listen address (overrides config)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(itemsCmd)

	// If no command is specified, default to server
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return serverCmd.RunE(cmd, args)
	}
}

func initLogging() {
	if verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.Println("Verbose logging enabled")
	}
}

// loadCollection builds the item collection the server will hold for its
// entire lifetime.
func loadCollection(cfg *config.Config) (items.Collection, error) {
	if cfg.ItemsFile == "" {
		return items.Default(), nil
	}
	collection, err := items.Load(cfg.ItemsFile)
	if err != nil {
		return items.Collection{}, err
	}
	log.Printf("Loaded %d items from %s", collection.Len(), cfg.ItemsFile)
	return collection, nil
}

func runServer(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("listen") {
		cfg.ListenAddr = listenAddr
	}

	collection, err := loadCollection(cfg)
	if err != nil {
		return fmt.Errorf("failed to load item collection: %w", err)
	}

	srv, err := server.New(cfg, collection)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Printf("Received signal: %v", sig)
		cancel()
	}()

	// Start SSH viewer server if configured. Sessions read the collection
	// in-process rather than looping back over HTTP.
	if cfg.SSH.Enabled {
		sshServer, err := internalssh.NewServer(internalssh.SSHConfig{
			ListenAddr:         cfg.SSH.ListenAddr,
			HostKeyPath:        cfg.SSH.HostKeyPath,
			AuthorizedKeysPath: cfg.SSH.AuthorizedKeysPath,
			ServerURL:          "direct (in-process)",
			FetcherFactory:     collectionFetcherFactory(collection),
		})
		if err != nil {
			log.Printf("WARNING: Failed to create SSH server: %v", err)
		} else {
			go func() {
				log.Printf("SSH viewer listening on %s", cfg.SSH.ListenAddr)
				if err := sshServer.ListenAndServe(); err != nil {
					select {
					case <-ctx.Done():
					default:
						log.Printf("SSH server error: %v", err)
					}
				}
			}()
			go func() {
				<-ctx.Done()
				sshServer.Close()
			}()
		}
	}

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	log.Println("Server stopped gracefully")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
