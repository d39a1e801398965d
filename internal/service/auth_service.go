package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/epicircle/scrap-pickups/internal/auth"
	"github.com/epicircle/scrap-pickups/internal/model"
)

type SessionStore interface {
	SaveUser(ctx context.Context, user model.User) error
	User(ctx context.Context, phone string) (model.User, bool, error)
	SavePartnerToken(ctx context.Context, phone, token string) error
	Active(ctx context.Context, principal model.Principal, token string) (bool, error)
	Clear(ctx context.Context, principal model.Principal) error
}

type TokenIssuer interface {
	Issue(principal model.Principal) (string, error)
}

type OTPInput struct {
	Phone  string
	Name   string
	SignUp bool
}

type VerifyInput struct {
	Phone string
	Name  string
	OTP   string
}

type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
	Role  model.Role `json:"role"`
}

type AuthService struct {
	sessions SessionStore
	tokens   TokenIssuer
	mockOTP  string
}

func NewAuthService(sessions SessionStore, tokens TokenIssuer, mockOTP string) *AuthService {
	return &AuthService{sessions: sessions, tokens: tokens, mockOTP: mockOTP}
}

// RequestOTP checks the login form. No code is actually sent; the hint tells
// the caller which code to use.
func (s *AuthService) RequestOTP(input OTPInput) (string, error) {
	if !auth.ValidPhone(input.Phone) {
		return "", fmt.Errorf("%w: please enter a valid %d-digit phone number", ErrInvalidInput, auth.MinPhoneDigits)
	}
	if input.SignUp && strings.TrimSpace(input.Name) == "" {
		return "", fmt.Errorf("%w: please enter your name to sign up", ErrInvalidInput)
	}
	return fmt.Sprintf("An OTP has been sent to your phone (use %s).", s.mockOTP), nil
}

func (s *AuthService) VerifyCustomer(ctx context.Context, input VerifyInput) (*Session, error) {
	phone, err := s.verify(input)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		existing, ok, err := s.sessions.User(ctx, phone)
		if err != nil {
			return nil, err
		}
		if ok {
			name = existing.Name
		}
	}

	principal := model.Principal{Phone: phone, Name: name, Role: model.RoleCustomer}
	token, err := s.tokens.Issue(principal)
	if err != nil {
		return nil, err
	}
	user := model.User{Name: name, Phone: phone, Token: token}
	if err := s.sessions.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user, Role: principal.Role}, nil
}

func (s *AuthService) VerifyPartner(ctx context.Context, input VerifyInput) (*Session, error) {
	phone, err := s.verify(input)
	if err != nil {
		return nil, err
	}

	principal := model.Principal{Phone: phone, Name: strings.TrimSpace(input.Name), Role: model.RolePartner}
	token, err := s.tokens.Issue(principal)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SavePartnerToken(ctx, phone, token); err != nil {
		return nil, err
	}
	return &Session{
		Token: token,
		User:  model.User{Name: principal.Name, Phone: phone, Token: token},
		Role:  principal.Role,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, principal model.Principal) error {
	return s.sessions.Clear(ctx, principal)
}

// Authorize accepts a parsed token only while its session key is present.
func (s *AuthService) Authorize(ctx context.Context, principal model.Principal, token string) error {
	active, err := s.sessions.Active(ctx, principal, token)
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("%w: session has ended", ErrUnauthorized)
	}
	return nil
}

func (s *AuthService) verify(input VerifyInput) (string, error) {
	if !auth.ValidPhone(input.Phone) {
		return "", fmt.Errorf("%w: please enter a valid %d-digit phone number", ErrInvalidInput, auth.MinPhoneDigits)
	}
	if !auth.ValidOTP(s.mockOTP, input.OTP) {
		return "", fmt.Errorf("%w: the OTP you entered is incorrect", ErrUnauthorized)
	}
	return auth.NormalizePhone(input.Phone), nil
}
