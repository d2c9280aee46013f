package services

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/shpjp/quicker-api/models"
	"github.com/shpjp/quicker-api/repositories"
)

// CreateUserInput carries the caller-supplied fields of a new user.
type CreateUserInput struct {
	Username    string
	Email       string
	DisplayName string
	Bio         *string
}

// CreateUser registers a user. Username and email must both be unused
// (exact, case-sensitive match).
func (s *Service) CreateUser(in CreateUserInput) (models.User, error) {
	if strings.TrimSpace(in.Username) == "" {
		return models.User{}, invalid("Username is required")
	}
	if n := utf8.RuneCountInString(in.Username); n < models.MinUsernameLength || n > models.MaxUsernameLength {
		return models.User{}, invalid("Username must be between %d and %d characters", models.MinUsernameLength, models.MaxUsernameLength)
	}
	if strings.TrimSpace(in.Email) == "" {
		return models.User{}, invalid("Email is required")
	}
	if !validEmail(in.Email) {
		return models.User{}, invalid("Invalid email address")
	}
	if utf8.RuneCountInString(in.DisplayName) > models.MaxDisplayNameLength {
		return models.User{}, invalid("Display name must be between 1 and %d characters", models.MaxDisplayNameLength)
	}
	display := in.DisplayName
	if display == "" {
		display = in.Username
	}

	user := models.User{
		ID:          models.NewID(),
		Username:    in.Username,
		Email:       in.Email,
		DisplayName: display,
		Bio:         in.Bio,
		CreatedAt:   s.timestamp(),
	}

	err := s.store.Update(repositories.Users, func(tx *repositories.Tx) error {
		usernameTaken, emailTaken := repositories.UserExists(tx.Users, in.Username, in.Email)
		switch {
		case usernameTaken:
			return conflict("User with this username already exists")
		case emailTaken:
			return conflict("User with this email already exists")
		}
		tx.Users.Insert(user)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user created")
	return user, nil
}

// GetUser returns the user with the given id.
func (s *Service) GetUser(id string) (models.User, error) {
	u, ok := s.store.Users.Get(id)
	if !ok {
		return models.User{}, notFound("User not found")
	}
	return u, nil
}

// GetUserByUsername returns the user with the given username.
func (s *Service) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	err := s.store.View(repositories.Users, func(tx *repositories.Tx) error {
		u, ok := repositories.UserByUsername(tx.Users, username)
		if !ok {
			return notFound("User not found")
		}
		user = u
		return nil
	})
	return user, err
}

// ListUsers returns every user in registration order.
func (s *Service) ListUsers() []models.User {
	return s.store.Users.List()
}

// validEmail accepts a bare addr-spec (local@domain), no display name.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
