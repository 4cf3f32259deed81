package Session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync"

	"Tractor/ApiClient"
	"Tractor/Models"
)

// state is what gets persisted between runs: the same two pieces the browser
// client kept in local storage, token and user snapshot.
type state struct {
	Token string       `json:"token"`
	User  *Models.User `json:"user"`
}

// Store owns the current login. It is the only writer of session state; every
// other component reads through it. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	file string
	s    state
}

// NewStore loads any persisted session from file so a restart with a stored
// token comes back authenticated without a fresh login.
func NewStore(file string) *Store {
	store := &Store{file: file}

	data, err := os.ReadFile(file)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("Failed to read session file:", err)
		}
		return store
	}
	if err := json.Unmarshal(data, &store.s); err != nil {
		log.Println("Discarding unreadable session file:", err)
		return store
	}
	return store
}

// Token implements ApiClient.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Token
}

func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// CurrentUser returns the stored profile snapshot. The second result is false
// when nobody is logged in.
func (s *Store) CurrentUser() (Models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.s.User == nil {
		return Models.User{}, false
	}
	return *s.s.User, true
}

// Login authenticates against the API and persists the resulting session.
// Identity and role come from the server's response, never from the client.
// The returned error always carries a message fit to show the user.
func (s *Store) Login(ctx context.Context, api *ApiClient.Client, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return errors.New("Email and password are required")
	}

	resp, err := api.Login(ctx, email, password)
	if err != nil {
		var apiErr *ApiClient.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		if errors.Is(err, ApiClient.ErrAuthExpired) {
			return errors.New("Invalid email or password")
		}
		log.Println("Login request failed:", err)
		return errors.New("Login failed. Please try again.")
	}

	s.mu.Lock()
	s.s = state{Token: resp.Token, User: &resp.User}
	s.persistLocked()
	s.mu.Unlock()
	return nil
}

// Logout clears the session in memory and on disk.
func (s *Store) Logout() {
	s.Clear()
}

// Clear wipes the persisted token and user snapshot. Called on logout and by
// the shell when any request reports an expired session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s = state{}
	if err := os.Remove(s.file); err != nil && !os.IsNotExist(err) {
		log.Println("Failed to remove session file:", err)
	}
}

func (s *Store) persistLocked() {
	data, err := json.Marshal(s.s)
	if err != nil {
		log.Println("Failed to encode session:", err)
		return
	}
	if err := os.WriteFile(s.file, data, 0600); err != nil {
		log.Println("Failed to write session file:", err)
	}
}
