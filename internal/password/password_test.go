package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rspass/internal/password"
)

func TestGenerateLength(t *testing.T) {
	for _, length := range []int{4, 8, 20, 64} {
		got, err := password.Generate(length)
		require.NoError(t, err)
		require.Len(t, got, length)
	}
}

func TestGenerateRaisesTinyLengths(t *testing.T) {
	got, err := password.Generate(1)
	require.NoError(t, err)
	require.Len(t, got, 4)
}

func TestGenerateContainsEveryClass(t *testing.T) {
	got, err := password.Generate(12)
	require.NoError(t, err)

	require.True(t, strings.ContainsAny(got, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"), got)
	require.True(t, strings.ContainsAny(got, "abcdefghijklmnopqrstuvwxyz"), got)
	require.True(t, strings.ContainsAny(got, "0123456789"), got)
	require.True(t, strings.ContainsAny(got, "!@#$%^&*()"), got)
}

func TestGenerateStaysInCharset(t *testing.T) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()"

	got, err := password.Generate(64)
	require.NoError(t, err)
	for _, r := range got {
		require.Contains(t, charset, string(r))
	}
}

func TestGenerateIsNotConstant(t *testing.T) {
	a, err := password.Generate(20)
	require.NoError(t, err)
	b, err := password.Generate(20)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
