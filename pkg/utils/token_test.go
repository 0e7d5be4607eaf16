package utils_test

import (
	"regexp"
	"testing"

	"feedback-forms-be/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePublicToken(t *testing.T) {
	urlSafe := regexp.MustCompile(`^[A-Za-z0-9_-]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := utils.GeneratePublicToken()
		require.NoError(t, err)
		assert.Regexp(t, urlSafe, token, "token must be short and URL-safe")
		seen[token] = true
	}
	assert.Greater(t, len(seen), 99, "tokens are effectively unique")
}
