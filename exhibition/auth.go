package exhibition

import (
	"context"
	"errors"
)

// AuthService handles authentication.
type AuthService struct {
	client *Client
}

// signInRequest is the sign-in payload.
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn exchanges credentials for an authenticated User. Email format
// is not checked locally; the remote service owns that rule.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*User, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	var resp envelope[User]
	if err := s.client.post(ctx, "/v1/auth/sign-in", signInRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, &Error{Message: "sign-in returned no user"}
	}
	return &resp.Results[0], nil
}
