package ssh

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	charmssh "github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishbubbletea "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"shelf/internal/tui"
)

// SSHConfig holds configuration for the SSH viewer server
type SSHConfig struct {
	ListenAddr         string
	HostKeyPath        string
	AuthorizedKeysPath string
	ServerURL          string
	// FetcherFactory creates the item fetcher for each SSH session.
	// Every session gets its own viewer model, so every session is its
	// own mount with its own single fetch.
	FetcherFactory func() tui.ItemFetcher
}

// NewServer creates a Wish SSH server that serves the item viewer
func NewServer(config SSHConfig) (*charmssh.Server, error) {
	if config.ListenAddr == "" {
		config.ListenAddr = ":2222"
	}
	if config.HostKeyPath == "" {
		path, err := defaultHostKeyPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve host key path: %w", err)
		}
		config.HostKeyPath = path
	}
	if config.FetcherFactory == nil {
		return nil, fmt.Errorf("fetcher factory is required")
	}

	// Load authorized keys for public key auth
	authorizedKeys, err := LoadAuthorizedKeys(config.AuthorizedKeysPath)
	if err != nil {
		log.Printf("[SSH] No authorized keys loaded: %v", err)
		authorizedKeys = nil
	} else {
		log.Printf("[SSH] Loaded %d authorized keys", len(authorizedKeys))
	}

	handler := func(sess charmssh.Session) (tea.Model, []tea.ProgramOption) {
		return sshViewerHandler(sess, config)
	}

	opts := []charmssh.Option{
		wish.WithAddress(config.ListenAddr),
		wish.WithHostKeyPath(config.HostKeyPath),
		wish.WithMiddleware(
			wishbubbletea.Middleware(handler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	}

	// Add public key auth if we have authorized keys
	if len(authorizedKeys) > 0 {
		opts = append(opts, wish.WithPublicKeyAuth(func(ctx charmssh.Context, key charmssh.PublicKey) bool {
			return publicKeyHandler(ctx, key, authorizedKeys)
		}))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	return server, nil
}

// sshViewerHandler creates a viewer model for each SSH session
func sshViewerHandler(sess charmssh.Session, config SSHConfig) (tea.Model, []tea.ProgramOption) {
	// Create renderer for this SSH session so styles emit correct ANSI
	// escape sequences for the connecting terminal.
	renderer := wishbubbletea.MakeRenderer(sess)

	model := tui.NewModel(tui.ModelConfig{
		Fetcher:   config.FetcherFactory(),
		ServerURL: config.ServerURL,
		Renderer:  renderer,
	})

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// publicKeyHandler validates SSH public keys against the authorized keys list
func publicKeyHandler(ctx charmssh.Context, key charmssh.PublicKey, authorizedKeys []charmssh.PublicKey) bool {
	for _, authKey := range authorizedKeys {
		if charmssh.KeysEqual(key, authKey) {
			log.Printf("[SSH] Public key accepted for user: %s", ctx.User())
			return true
		}
	}
	log.Printf("[SSH] Public key rejected for user: %s", ctx.User())
	return false
}
