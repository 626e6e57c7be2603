package dbauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticToken(t *testing.T) {
	token, err := Static("hunter2").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hunter2", token)
}

func TestNewPool_InvalidURL(t *testing.T) {
	_, err := NewPool(context.Background(), "://not-a-url", Static(""))
	assert.Error(t, err)
}
