package ssh

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charmssh "github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"
)

// configDir returns the shelf data directory for SSH keys, creating it if needed.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".shelf")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, nil
}

// defaultHostKeyPath returns the default path for the SSH host key.
// Wish generates the key on first use if the file does not exist.
func defaultHostKeyPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ssh_host_key"), nil
}

// defaultAuthorizedKeysPath returns the default path for authorized_keys
func defaultAuthorizedKeysPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "authorized_keys")
}

// LoadAuthorizedKeys loads SSH public keys from an authorized_keys file
func LoadAuthorizedKeys(path string) ([]charmssh.PublicKey, error) {
	if path == "" {
		path = defaultAuthorizedKeysPath()
	}
	if path == "" {
		return nil, fmt.Errorf("no authorized keys path available")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open authorized keys: %w", err)
	}
	defer f.Close()

	var keys []charmssh.PublicKey
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pubKey, _, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			continue // skip invalid lines
		}
		keys = append(keys, pubKey)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading authorized keys: %w", err)
	}

	return keys, nil
}
