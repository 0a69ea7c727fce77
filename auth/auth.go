// Package auth issues and verifies the bearer credentials that gate every
// fleet and tracking query. Tokens are HS256 JWTs; passwords are stored as
// bcrypt hashes. Verified identities live only in the request context, no
// server-side session state is kept.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingToken means no credential was presented at all.
	ErrMissingToken = errors.New("access token required")
	// ErrInvalidToken covers malformed, mis-signed and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidCredentials is returned for unknown users and wrong
	// passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when registering a duplicate student ID or
	// email.
	ErrUserExists = errors.New("user already exists")
)

const tokenTTL = 7 * 24 * time.Hour

// User is a registered rider. The password hash never leaves the package.
type User struct {
	StudentID   string `json:"studentId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`

	passwordHash []byte
	createdAt    time.Time
}

// Identity is the verified assertion bound to a request after the access
// gate admits it.
type Identity struct {
	StudentID string
	Name      string
}

// Service registers users and issues/verifies their tokens.
type Service struct {
	secret []byte
	now    func() time.Time

	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]string // email -> studentID
}

func NewService(secret []byte) *Service {
	return &Service{
		secret:  secret,
		now:     time.Now,
		byID:    map[string]*User{},
		byEmail: map[string]string{},
	}
}

// RegisterInput carries the fields a new rider submits.
type RegisterInput struct {
	StudentID   string
	Name        string
	Email       string
	Password    string
	PhoneNumber string
}

// Register creates the user and returns a fresh token for it.
func (s *Service) Register(_ context.Context, in RegisterInput) (string, User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", User{}, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		StudentID:    in.StudentID,
		Name:         in.Name,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		passwordHash: hash,
		createdAt:    s.now(),
	}

	s.mu.Lock()
	if _, ok := s.byID[u.StudentID]; ok {
		s.mu.Unlock()
		return "", User{}, ErrUserExists
	}
	if _, ok := s.byEmail[u.Email]; ok {
		s.mu.Unlock()
		return "", User{}, ErrUserExists
	}
	s.byID[u.StudentID] = u
	s.byEmail[u.Email] = u.StudentID
	s.mu.Unlock()

	tok, err := s.issue(*u)
	if err != nil {
		return "", User{}, err
	}
	return tok, *u, nil
}

// Login verifies the password and returns a fresh token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Login(_ context.Context, studentID, password string) (string, User, error) {
	s.mu.RLock()
	u, ok := s.byID[studentID]
	s.mu.RUnlock()
	if !ok {
		return "", User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return "", User{}, ErrInvalidCredentials
	}
	tok, err := s.issue(*u)
	if err != nil {
		return "", User{}, err
	}
	return tok, *u, nil
}

type claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (s *Service) issue(u User) (string, error) {
	now := s.now()
	c := claims{
		Name: u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.StudentID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify validates a bearer token and returns the identity it asserts.
// An empty token is ErrMissingToken; everything else that fails is
// ErrInvalidToken.
func (s *Service) Verify(token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrMissingToken
	}
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid || c.Subject == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{StudentID: c.Subject, Name: c.Name}, nil
}
