package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	identity := Identity{ID: uuid.New(), Name: "John Doe", Avatar: "//www.gravatar.com/avatar/x"}

	token, issued, err := issuer.Issue(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, issued.RegisteredClaims.ID)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, identity, claims.Identity)
	require.Equal(t, issued.RegisteredClaims.ID, claims.RegisteredClaims.ID)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejects(t *testing.T) {
	identity := Identity{ID: uuid.New(), Name: "Jane"}
	issuer := NewTokenIssuer("secret", time.Hour)

	expired, _, err := NewTokenIssuer("secret", time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		Issue(identity)
	require.NoError(t, err)

	otherSecret, _, err := NewTokenIssuer("other", time.Hour).Issue(identity)
	require.NoError(t, err)

	noneSigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Identity: identity}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		code  string
	}{
		{name: "expired", token: expired, code: ErrorCodeTokenExpired},
		{name: "wrong secret", token: otherSecret, code: ErrorCodeInvalidToken},
		{name: "alg none", token: noneSigned, code: ErrorCodeInvalidToken},
		{name: "garbage", token: "not.a.token", code: ErrorCodeInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := issuer.Verify(tt.token)
			require.Nil(t, claims)
			require.True(t, HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		errCode string
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "missing", header: "", errCode: ErrorCodeMissingToken},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", errCode: ErrorCodeInvalidToken},
		{name: "scheme only", header: "Bearer ", errCode: ErrorCodeInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.errCode != "" {
				require.True(t, HasCode(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPasswordHasher(t *testing.T) {
	hasher := PasswordHasher{Cost: 4}

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	require.NotEqual(t, "123456", hash)
	require.NoError(t, hasher.Check(hash, "123456"))
	require.Error(t, hasher.Check(hash, "654321"))
}
