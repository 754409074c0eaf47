package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	t.Run("accepts a strong password", func(t *testing.T) {
		require.NoError(t, validatePassword("Sup3r$ecret"))
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		require.Error(t, validatePassword("Ab1!"))
	})

	t.Run("rejects passwords over the bcrypt limit", func(t *testing.T) {
		long := make([]byte, maxPasswordBytes+1)
		for i := range long {
			long[i] = 'A'
		}
		require.Error(t, validatePassword(string(long)+"b1!"))
	})

	t.Run("requires an uppercase letter", func(t *testing.T) {
		require.Error(t, validatePassword("sup3r$ecret"))
	})

	t.Run("requires a digit", func(t *testing.T) {
		require.Error(t, validatePassword("Super$ecret"))
	})

	t.Run("requires a special character", func(t *testing.T) {
		require.Error(t, validatePassword("Sup3rSecret"))
	})
}
