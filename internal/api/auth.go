package api

import (
	"context"
	"net/http"

	"shopfront/internal/models"
)

// Backend success sentinels. They are inconsistent across endpoints and are
// matched here only, never outside this package.
const (
	msgSuccess    = "success"
	msgVerified   = "verified"
	statusSuccess = "success"
	otpSentOK     = "success" // statusMsg on /auth/forgotPasswords
	otpVerifiedOK = "Success" // status on /auth/verifyResetCode, capitalized
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPayload is the signup payload.
type RegisterPayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	RePassword string `json:"rePassword"`
	Phone      string `json:"phone"`
}

// AuthResult carries the server-issued token plus the account echoed back
// by signin/signup.
type AuthResult struct {
	Token string
	User  models.User
}

// Identity is the server-asserted identity decoded from a verified token.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// authEnvelope is the union of the fields the auth endpoints may return.
type authEnvelope struct {
	Message   string       `json:"message"`
	Status    string       `json:"status"`
	StatusMsg string       `json:"statusMsg"`
	Token     string       `json:"token"`
	User      *models.User `json:"user"`
	Decoded   *Identity    `json:"decoded"`
}

// Login exchanges credentials for a token. On logical rejection the server
// message is returned as *Error.
func (c *HTTPClient) Login(ctx context.Context, cr Credentials) (*AuthResult, error) {
	var env authEnvelope
	if err := c.post(ctx, "/auth/signin", nil, cr, &env); err != nil {
		return nil, err
	}
	if env.Message != msgSuccess {
		return nil, reject(env.Message, "Login failed. Please try again.")
	}
	res := &AuthResult{Token: env.Token}
	if env.User != nil {
		res.User = *env.User
	}
	return res, nil
}

// Register creates an account and returns the issued token.
func (c *HTTPClient) Register(ctx context.Context, p RegisterPayload) (*AuthResult, error) {
	var env authEnvelope
	if err := c.post(ctx, "/auth/signup", nil, p, &env); err != nil {
		return nil, err
	}
	if env.Message != msgSuccess {
		return nil, reject(env.Message, "Registration failed. Please try again.")
	}
	res := &AuthResult{Token: env.Token}
	if env.User != nil {
		res.User = *env.User
	}
	return res, nil
}

// Verify asks the backend to validate the current token and returns the
// identity it asserts. Any non-verified answer is a logical rejection.
func (c *HTTPClient) Verify(ctx context.Context) (*Identity, error) {
	var env authEnvelope
	if err := c.get(ctx, "/auth/verifyToken", nil, &env); err != nil {
		return nil, err
	}
	if env.Message != msgVerified || env.Decoded == nil {
		return nil, reject(env.Message, "token rejected")
	}
	return env.Decoded, nil
}

// SendOtp asks the backend to email a reset code to the given address.
func (c *HTTPClient) SendOtp(ctx context.Context, email string) error {
	var env authEnvelope
	body := map[string]string{"email": email}
	if err := c.post(ctx, "/auth/forgotPasswords", nil, body, &env); err != nil {
		return err
	}
	if env.StatusMsg != otpSentOK {
		return reject(env.Message, "Failed to send OTP")
	}
	return nil
}

// VerifyOtp submits the reset code received by email.
func (c *HTTPClient) VerifyOtp(ctx context.Context, code string) error {
	var env authEnvelope
	body := map[string]string{"resetCode": code}
	if err := c.post(ctx, "/auth/verifyResetCode", nil, body, &env); err != nil {
		return err
	}
	if env.Status != otpVerifiedOK {
		return reject(env.Message, "Invalid OTP")
	}
	return nil
}

// ResetPassword sets a new password after OTP verification. Success is
// signalled solely by the presence of a fresh token in the response.
func (c *HTTPClient) ResetPassword(ctx context.Context, email, newPassword string) (string, error) {
	var env authEnvelope
	body := map[string]string{"email": email, "newPassword": newPassword}
	if err := c.do(ctx, http.MethodPut, "/auth/resetPassword", nil, body, &env); err != nil {
		return "", err
	}
	if env.Token == "" {
		return "", reject(env.Message, "Failed to reset password")
	}
	return env.Token, nil
}
