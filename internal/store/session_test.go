package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/statestore"
)

func TestAdminLoginWrongPassword(t *testing.T) {
	sess := NewAdminSessionStore(nil, nil)

	ok := sess.Login(AdminUsername, "wrong")
	assert.False(t, ok)

	state := sess.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.Identity)
	require.NotNil(t, state.Error)
	assert.NotEmpty(t, *state.Error)

	sess.ClearError()
	state = sess.State()
	assert.Nil(t, state.Error)
	assert.False(t, state.IsAuthenticated)
}

func TestAdminLoginSuccess(t *testing.T) {
	sess := NewAdminSessionStore(nil, nil)

	// a failed attempt leaves an error behind; the next success clears it
	sess.Login("nobody", "nothing")

	ok := sess.Login(AdminUsername, AdminPassword)
	assert.True(t, ok)

	state := sess.State()
	assert.True(t, state.IsAuthenticated)
	assert.Nil(t, state.Error)
	require.NotNil(t, state.Identity)
	assert.Equal(t, "Admin", state.Identity.Name)
	assert.Equal(t, "administrator", state.Identity.Role)
}

func TestLogoutAlwaysResets(t *testing.T) {
	sess := NewAdminSessionStore(nil, nil)

	// logout from anonymous
	sess.Logout()
	state := sess.State()
	assert.Nil(t, state.Identity)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.Error)

	// logout from authenticated
	require.True(t, sess.Login(AdminUsername, AdminPassword))
	sess.Logout()
	state = sess.State()
	assert.Nil(t, state.Identity)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.Error)
}

func TestStudentLoginSuccess(t *testing.T) {
	sess := NewStudentSessionStore(nil, nil)

	ok := sess.Login(StudentUsername, StudentPassword)
	assert.True(t, ok)

	state := sess.State()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "Lucas Silva", state.Identity.Name)
	assert.Len(t, state.Identity.Workouts, 3)
	assert.Len(t, state.Identity.Measurements, 2)
}

func TestStudentCredentialsDoNotOpenAdminSession(t *testing.T) {
	sess := NewAdminSessionStore(nil, nil)
	assert.False(t, sess.Login(StudentUsername, StudentPassword))
	assert.False(t, sess.Authenticated())
}

func TestUpdateGuardedWhileAnonymous(t *testing.T) {
	sess := NewStudentSessionStore(nil, nil)

	applied := sess.Update(func(identity *domain.StudentIdentity) {
		identity.Phone = "(11) 90000-0000"
	})
	assert.False(t, applied)
	assert.Nil(t, sess.State().Identity)
}

func TestUpdateMergesIdentityFields(t *testing.T) {
	sess := NewStudentSessionStore(nil, nil)
	require.True(t, sess.Login(StudentUsername, StudentPassword))

	applied := sess.Update(func(identity *domain.StudentIdentity) {
		identity.Phone = "(11) 90000-0000"
		identity.Address.City = "Campinas"
	})
	assert.True(t, applied)

	state := sess.State()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "(11) 90000-0000", state.Identity.Phone)
	assert.Equal(t, "Campinas", state.Identity.Address.City)
	// untouched fields survive the merge
	assert.Equal(t, "Lucas Silva", state.Identity.Name)
	assert.Len(t, state.Identity.Workouts, 3)
}

func TestSessionPersistenceRoundTrip(t *testing.T) {
	db, err := statestore.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer db.Close()

	sess := NewStudentSessionStore(db, nil)
	require.True(t, sess.Login(StudentUsername, StudentPassword))

	restored := NewStudentSessionStore(db, nil)
	state := restored.State()
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.Identity)
	assert.Equal(t, sess.State().Identity, state.Identity)
}
