package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserAgent(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "1.2.3"
	require.Equal(t, "sha2sum/1.2.3", UserAgent())
	require.Contains(t, String(), "v1.2.3")
}
