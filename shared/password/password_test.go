package password_test

import (
	"strings"
	"testing"

	"frontdesk/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "receptionist password", password: "desk@ayodhya1"},
		{name: "unicode password", password: "पासवर्ड-101"},
		{name: "empty", password: "", wantErr: password.ErrEmptyPassword},
		{name: "longer than bcrypt allows", password: strings.Repeat("m", 73), wantErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("night-audit")
	require.NoError(t, err)

	second, err := password.Hash("night-audit")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("desk@ayodhya1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "match", password: "desk@ayodhya1", hash: hash},
		{name: "wrong password", password: "desk@mithila1", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "case sensitive", password: "DESK@AYODHYA1", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "desk@ayodhya1", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "desk@ayodhya1", hash: "not-a-bcrypt-hash", wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
