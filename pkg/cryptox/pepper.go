package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Configuration for Argon2id hashing.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt
)

var (
	// Pepper is loaded from a file on first use, or generated and written
	// back if the file does not exist yet. First use can be the first
	// concurrent login, so initialization goes through pepperOnce: without
	// it, two racing first requests on a fresh deployment could each
	// generate a different pepper and one user's hash would never verify
	// again after restart.
	pepperOnce sync.Once
	pepper     string
	pepperFile string

	decoyOnce sync.Once
	decoy     string
)

// SetPepperPath sets the pepper file path. Call once at startup, before the
// first hash or verify.
func SetPepperPath(file string) {
	pepperFile = file
}

func GetPepper() string {
	pepperOnce.Do(func() {
		p, err := loadOrGeneratePepper()
		if err != nil {
			slog.Error("failed to load or generate pepper", slog.Any("err", err))
			os.Exit(1)
		}
		pepper = p
	})
	return pepper
}

// loadOrGeneratePepper loads the pepper from a file or generates one if not found.
func loadOrGeneratePepper() (string, error) {
	path := filepath.Clean(pepperFile)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		pepperBytes := make([]byte, keyLength)
		if _, err := rand.Read(pepperBytes); err != nil {
			return "", err
		}
		generated := base64.RawURLEncoding.EncodeToString(pepperBytes)

		if err := os.WriteFile(path, []byte(generated), 0600); err != nil {
			return "", err
		}
		return generated, nil
	}

	pepperBytes, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(pepperBytes), nil
}

// decoyHash returns a fixed hash of an unguessable random value, built once
// per process. Verifying against it always fails but costs a full Argon2id
// computation.
func decoyHash() string {
	decoyOnce.Do(func() {
		buf := make([]byte, 32)
		_, _ = rand.Read(buf)
		h, err := HashPassword(base64.RawURLEncoding.EncodeToString(buf))
		if err != nil {
			slog.Error("failed to build decoy hash", slog.Any("err", err))
			os.Exit(1)
		}
		decoy = h
	})
	return decoy
}
