package api

import (
	"context"

	"shopfront/internal/models"
)

// ProfileUpdate carries the fields /users/updateMe accepts. Empty fields
// are omitted so the backend keeps their current values.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// UpdateMe updates the authenticated user's profile.
func (c *HTTPClient) UpdateMe(ctx context.Context, p ProfileUpdate) error {
	var env authEnvelope
	if err := c.put(ctx, "/users/updateMe", p, &env); err != nil {
		return err
	}
	if env.Message != msgSuccess {
		return reject(env.Message, "Failed to update profile")
	}
	return nil
}

// PasswordChange is the /users/changeMyPassword payload.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	Password        string `json:"password"`
	RePassword      string `json:"rePassword"`
}

// ChangePassword changes the password of the authenticated user and returns
// the re-issued token. Callers are expected to treat the old session as
// invalidated regardless.
func (c *HTTPClient) ChangePassword(ctx context.Context, p PasswordChange) (string, error) {
	var env authEnvelope
	if err := c.put(ctx, "/users/changeMyPassword", p, &env); err != nil {
		return "", err
	}
	if env.Message != msgSuccess {
		return "", reject(env.Message, "Failed to change password")
	}
	return env.Token, nil
}

// UserByID fetches a user document.
func (c *HTTPClient) UserByID(ctx context.Context, id string) (*models.User, error) {
	var env struct {
		Data *models.User `json:"data"`
	}
	if err := c.get(ctx, "/users/"+id, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, reject("", "user not found")
	}
	return env.Data, nil
}
