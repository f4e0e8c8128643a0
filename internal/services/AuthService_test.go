package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcd/internal/testutil"
)

func newAuthFixture() (AuthServiceInterface, *testutil.MemorySessions, *testutil.MockNotifier) {
	sessions := testutil.NewMemorySessions()
	notifier := &testutil.MockNotifier{}
	svc := NewAuthService(sessions, &testutil.SequenceIdentity{}, notifier, &testutil.MockLogger{})
	return svc, sessions, notifier
}

func TestLogin_AcceptsAnyCredentials(t *testing.T) {
	svc, _, notifier := newAuthFixture()

	user, token, err := svc.Login("jane@example.com", "whatever")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "jane", user.Name)
	assert.NotEmpty(t, token)

	require.Len(t, notifier.Notifications, 1)
	assert.Equal(t, "Login successful", notifier.Notifications[0].Title)
	assert.Equal(t, "Welcome back!", notifier.Notifications[0].Detail)
}

func TestLogin_SessionResolvesUser(t *testing.T) {
	svc, _, _ := newAuthFixture()

	user, token, err := svc.Login("jane@example.com", "pw")
	require.NoError(t, err)

	got, ok := svc.UserByToken(token)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
}

func TestSignup_UsesProvidedName(t *testing.T) {
	svc, _, notifier := newAuthFixture()

	user, token, err := svc.Signup("jane@example.com", "pw", "Jane Doe")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", user.Name)
	assert.NotEmpty(t, token)

	require.Len(t, notifier.Notifications, 1)
	assert.Equal(t, "Account created", notifier.Notifications[0].Title)
}

func TestSignup_DerivesNameFromEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	user, _, err := svc.Signup("bob@example.com", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Name)
}

func TestLogout_RemovesSession(t *testing.T) {
	svc, _, notifier := newAuthFixture()

	_, token, err := svc.Login("jane@example.com", "pw")
	require.NoError(t, err)

	svc.Logout(token)

	_, ok := svc.UserByToken(token)
	assert.False(t, ok)

	last := notifier.Notifications[len(notifier.Notifications)-1]
	assert.Equal(t, "Logged out", last.Title)
	assert.Equal(t, "You have been successfully logged out.", last.Detail)
}

func TestLogout_EmptyTokenStillNotifies(t *testing.T) {
	svc, _, notifier := newAuthFixture()

	svc.Logout("")
	require.Len(t, notifier.Notifications, 1)
	assert.Equal(t, "Logged out", notifier.Notifications[0].Title)
}

func TestUserByToken_UnknownToken(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, ok := svc.UserByToken("no-such-token")
	assert.False(t, ok)
}

func TestUserByToken_CorruptSessionDropped(t *testing.T) {
	svc, sessions, _ := newAuthFixture()
	sessions.Set("bad", []byte("{not json"))

	_, ok := svc.UserByToken("bad")
	assert.False(t, ok)

	_, ok = sessions.Get("bad")
	assert.False(t, ok)
}

func TestLogin_TokensAreUnique(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, t1, err := svc.Login("a@example.com", "pw")
	require.NoError(t, err)
	_, t2, err := svc.Login("b@example.com", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "jane", nameFromEmail("jane@example.com"))
	assert.Equal(t, "plain", nameFromEmail("plain"))
	assert.Equal(t, "@leading", nameFromEmail("@leading"))
}
