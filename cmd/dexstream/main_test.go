package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamCmdDefaultFlags(t *testing.T) {
	cmd := streamCmd()

	endpoint, err := cmd.Flags().GetString("endpoint")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:10000", endpoint)

	healthPort, err := cmd.Flags().GetInt("health-port")
	require.NoError(t, err)
	require.Equal(t, 8089, healthPort)
}
