// Package auth implements the local user registry and the admin gate
// for custom program management. There is no remote identity provider;
// users live in the slice store next to the rest of the app data.
package auth

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BerkeKaanDinler/fitness-web/internal/store"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// inviteCode grants admin at registration. Local-only app, so a fixed
// code mirrors the original behavior.
const inviteCode = "BKD-KURUCU-2024"

var founderEmails = map[string]bool{
	"berke@bkdfitness.com": true,
}

var (
	ErrNameTooShort     = errors.New("name must be at least 2 characters")
	ErrInvalidEmail     = errors.New("email address is not valid")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmailTaken       = errors.New("email is already registered")
	// ErrLoginFailed deliberately does not distinguish unknown email
	// from wrong password.
	ErrLoginFailed = errors.New("email or password is incorrect")
	ErrNotAdmin    = errors.New("admin role required")
)

// User is a registered local account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session points at the logged-in user, or is absent.
type Session struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service runs registration, login and the admin check over the slice
// store.
type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// Users loads the user collection, dropping records that lost their
// id, email or hash.
func (s *Service) Users() []User {
	raw, ok := s.store.ReadSlice(store.KeyUsers)
	if !ok {
		return nil
	}
	return NormalizeUsers(raw)
}

// NormalizeUsers validates a raw user list document.
func NormalizeUsers(raw []byte) []User {
	var docs []User
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil
	}

	seen := make(map[string]bool, len(docs))
	var out []User
	for _, u := range docs {
		u.Email = NormalizeEmail(u.Email)
		if u.ID == "" || u.Email == "" || u.PasswordHash == "" || seen[u.Email] {
			continue
		}
		if u.Role != RoleAdmin && u.Role != RoleMember {
			u.Role = RoleMember
		}
		seen[u.Email] = true
		out = append(out, u)
	}
	return out
}

// NormalizeEmail lowercases and trims an address; uniqueness is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) saveUsers(users []User) {
	s.store.PutJSON(store.KeyUsers, users)
}

// Register creates a new account and logs it in. The first user ever,
// a valid invite code, or a founder email gets the admin role.
func (s *Service) Register(name, email, password, invite string) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if len([]rune(name)) < 2 {
		return nil, ErrNameTooShort
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	users := s.Users()
	for _, u := range users {
		if u.Email == email {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := RoleMember
	if len(users) == 0 || invite == inviteCode || founderEmails[email] {
		role = RoleAdmin
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	s.saveUsers(append(users, user))
	s.store.PutJSON(store.KeySession, Session{UserID: user.ID, CreatedAt: user.CreatedAt})
	return &user, nil
}

// Login looks up the account by normalized email and checks the
// password hash. Any mismatch yields the same generic error.
func (s *Service) Login(email, password string) (*User, error) {
	email = NormalizeEmail(email)
	for _, u := range s.Users() {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, ErrLoginFailed
		}
		s.store.PutJSON(store.KeySession, Session{UserID: u.ID, CreatedAt: time.Now().UTC()})
		user := u
		return &user, nil
	}
	return nil, ErrLoginFailed
}

// Logout clears the session.
func (s *Service) Logout() {
	s.store.RemoveSlice(store.KeySession)
}

// CurrentUser resolves the session to a user. A session pointing at a
// deleted or unknown user counts as logged out and is dropped.
func (s *Service) CurrentUser() *User {
	var sess Session
	if !s.store.GetJSON(store.KeySession, &sess) || sess.UserID == "" {
		return nil
	}
	for _, u := range s.Users() {
		if u.ID == sess.UserID {
			user := u
			return &user
		}
	}
	s.store.RemoveSlice(store.KeySession)
	return nil
}

// RequireAdmin re-resolves the session at the moment of a mutating
// action. Callers must not rely on a role checked at render time.
func (s *Service) RequireAdmin() (*User, error) {
	u := s.CurrentUser()
	if u == nil || u.Role != RoleAdmin {
		return nil, ErrNotAdmin
	}
	return u, nil
}
