package cryptox

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var alnum = regexp.MustCompile(`^[A-Za-z0-9]+$`)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"invite token", InviteTokenSize},
		{"organizer token", OrganizerTokenSize},
		{"custom size", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.size*2)
			require.Regexp(t, alnum, token)

			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2, "tokens should be unique")
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestMustGenerateToken_Panics(t *testing.T) {
	require.NotEmpty(t, MustGenerateToken(InviteTokenSize))
	require.Panics(t, func() { MustGenerateToken(0) })
}

func TestFingerprintToken(t *testing.T) {
	fp1a := FingerprintToken("token-1")
	fp1b := FingerprintToken("token-1")
	fp2 := FingerprintToken("token-2")

	require.Equal(t, fp1a, fp1b)
	require.NotEqual(t, fp1a, fp2)
	require.Len(t, fp1a, 43)
}

func TestEqual(t *testing.T) {
	require.True(t, Equal("abc", "abc"))
	require.False(t, Equal("abc", "abd"))
	require.False(t, Equal("abc", "abcd"))
	require.False(t, Equal("", ""))
	require.False(t, Equal("abc", ""))
}
