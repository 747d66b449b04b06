package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRefName(t *testing.T) {
	valid := []string{
		"master",
		"feature/login",
		"abc#123-login",
		"origin/abc#007-fix/sub#part",
		"v1.2",
	}
	for _, name := range valid {
		assert.NoError(t, ValidateRefName(name), name)
	}

	invalid := []string{
		"",
		"@",
		"-rf",
		".hidden",
		"/abs",
		"branch.lock",
		"trailing.",
		"trailing/",
		"a..b",
		"a//b",
		"a@{1}",
		"a/.b",
		"with space",
		"tilde~1",
		"caret^",
		"colon:x",
		"what?",
		"star*",
		"bracket[",
		"back\\slash",
		"ctrl\x07",
	}
	for _, name := range invalid {
		err := ValidateRefName(name)
		if assert.Error(t, err, name) {
			assert.True(t, errors.Is(err, ErrInvalidRefName), name)
		}
	}
}
