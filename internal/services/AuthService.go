package services

import (
	"strings"

	json "github.com/goccy/go-json"

	"fcd/internal/models"
	"fcd/internal/providers"
)

// AuthServiceInterface is the mock credential layer. Any email/password
// pair is accepted; the user identity is derived from the email. Sessions
// live in the TTL session store and do not survive a restart.
type AuthServiceInterface interface {
	Login(email, password string) (*models.User, string, error)
	Signup(email, password, name string) (*models.User, string, error)
	Logout(token string)
	UserByToken(token string) (*models.User, bool)
}

type AuthService struct {
	sessions providers.SessionProviderInterface
	identity providers.IdentityProviderInterface
	notifier providers.NotifierInterface
	logger   providers.Logger
}

func NewAuthService(sessions providers.SessionProviderInterface, identity providers.IdentityProviderInterface, notifier providers.NotifierInterface, logger providers.Logger) AuthServiceInterface {
	return &AuthService{
		sessions: sessions,
		identity: identity,
		notifier: notifier,
		logger:   logger,
	}
}

func (as *AuthService) Login(email, _ string) (*models.User, string, error) {
	user := &models.User{
		ID:    "user-" + as.identity.NewID(),
		Email: email,
		Name:  nameFromEmail(email),
	}

	token, err := as.startSession(user)
	if err != nil {
		return nil, "", err
	}

	as.notifier.Notify(providers.NotifySuccess, "Login successful", "Welcome back!")
	return user, token, nil
}

func (as *AuthService) Signup(email, _ string, name string) (*models.User, string, error) {
	if name == "" {
		name = nameFromEmail(email)
	}
	user := &models.User{
		ID:    "user-" + as.identity.NewID(),
		Email: email,
		Name:  name,
	}

	token, err := as.startSession(user)
	if err != nil {
		return nil, "", err
	}

	as.notifier.Notify(providers.NotifySuccess, "Account created",
		"Your account has been successfully created.")
	return user, token, nil
}

func (as *AuthService) Logout(token string) {
	if token != "" {
		as.sessions.Del(token)
	}
	as.notifier.Notify(providers.NotifyInfo, "Logged out",
		"You have been successfully logged out.")
}

func (as *AuthService) UserByToken(token string) (*models.User, bool) {
	data, ok := as.sessions.Get(token)
	if !ok {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		as.logger.Warnf(providers.TypeApp, "Corrupt session payload, dropping session: %s", err)
		as.sessions.Del(token)
		return nil, false
	}
	return &user, true
}

func (as *AuthService) startSession(user *models.User) (string, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	token := as.identity.NewID()
	as.sessions.Set(token, data)
	return token, nil
}

func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
