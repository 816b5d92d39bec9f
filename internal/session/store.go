package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/consistencyhq/consistency-cli/internal/constants"
	"github.com/consistencyhq/consistency-cli/internal/keyring"
	"github.com/consistencyhq/consistency-cli/internal/models"
)

// ErrNoSession is returned when a durable value is absent rather than
// unreadable.
var ErrNoSession = errors.New("no stored session")

// Store persists the session's two durable values: the user record as a
// JSON file in the data directory and the bearer token in the OS
// keyring. The two writes are independent; Manager.Init treats any
// partial state as no session.
type Store struct {
	path string
}

// NewStore returns a store rooted at dataDir.
func NewStore(dataDir string) *Store {
	return &Store{
		path: filepath.Join(dataDir, constants.UserInfoFileName),
	}
}

func (s *Store) SaveUser(user models.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize user record: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write user record: %w", err)
	}

	return nil
}

func (s *Store) LoadUser() (models.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.User{}, ErrNoSession
		}
		return models.User{}, fmt.Errorf("failed to read user record: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to parse user record: %w", err)
	}

	return user, nil
}

func (s *Store) DeleteUser() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove user record: %w", err)
	}
	return nil
}

func (s *Store) SaveToken(token string) error {
	return keyring.SetToken(token)
}

func (s *Store) LoadToken() (string, error) {
	token, err := keyring.GetToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoSession
		}
		return "", err
	}
	return token, nil
}

func (s *Store) DeleteToken() error {
	err := keyring.DeleteToken()
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}
