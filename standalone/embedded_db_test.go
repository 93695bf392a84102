package main

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAvailablePortSkipsBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	busy := uint32(ln.Addr().(*net.TCPAddr).Port)

	port := findAvailablePort(busy)
	assert.NotEqual(t, busy, port)
	assert.Less(t, port-busy, uint32(100))

	// the returned port is actually free
	free, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	require.NoError(t, err)
	free.Close()
}

func TestSchemaIsEmbedded(t *testing.T) {
	require.NotEmpty(t, schemaSQL)
	assert.Contains(t, schemaSQL, "CREATE TABLE")
	assert.Contains(t, schemaSQL, "movies")
	assert.Contains(t, schemaSQL, "users")
}
