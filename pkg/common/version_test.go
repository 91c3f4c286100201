package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v)
	// the embedded file ends with a newline, Version must not
	assert.Equal(t, v, strings.TrimSpace(v))
}
