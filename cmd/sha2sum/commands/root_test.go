package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/nemuizzz/sha2sum/pkg/batch"
)

const abc256 = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

// executeCommand runs rootCmd with args and fresh flag values
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootDigestFile(t *testing.T) {
	path := writeFile(t, "abc.txt", "abc")

	out, err := executeCommand(t, "", "256", path)
	require.NoError(t, err)
	require.Equal(t, "SHA-256 of '"+path+"' -> "+abc256+"\n", out)

	out, err = executeCommand(t, "", "224", path)
	require.NoError(t, err)
	require.Equal(t, "SHA-224 of '"+path+"' -> 23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7\n", out)
}

func TestRootIncorrectInput(t *testing.T) {
	_, err := executeCommand(t, "")
	require.ErrorIs(t, err, ErrIncorrectInput)

	_, err = executeCommand(t, "", "256")
	require.ErrorIs(t, err, ErrIncorrectInput)
}

func TestRootUnknownVariant(t *testing.T) {
	path := writeFile(t, "abc.txt", "abc")

	_, err := executeCommand(t, "", "512", path)
	require.EqualError(t, err, "Unknown SHA method '512'")
}

func TestRootUnreadableSource(t *testing.T) {
	path := writeFile(t, "abc.txt", "abc")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	out, err := executeCommand(t, "", "256", missing, path)
	require.ErrorIs(t, err, ErrUnreadable)
	require.Equal(t, "Couldn't open file "+missing+"\nSHA-256 of '"+path+"' -> "+abc256+"\n", out)
}

func TestRootStdin(t *testing.T) {
	out, err := executeCommand(t, "abc", "sha256", "-")
	require.NoError(t, err)
	require.Equal(t, "SHA-256 of '-' -> "+abc256+"\n", out)
}

func TestRootURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("abc"))
	}))
	defer server.Close()

	out, err := executeCommand(t, "", "256", server.URL, "--timeout", "5s")
	require.NoError(t, err)
	require.Equal(t, "SHA-256 of '"+server.URL+"' -> "+abc256+"\n", out)
}

func TestRootJSONFormat(t *testing.T) {
	path := writeFile(t, "abc.txt", "abc")

	out, err := executeCommand(t, "", "256", path, "--format", "json", "--workers", "2")
	require.NoError(t, err)

	var res batch.Result
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &res))
	require.Equal(t, path, res.Source)
	require.Equal(t, "SHA-256", res.Variant)
	require.Equal(t, abc256, res.Digest)
	require.Equal(t, 3, res.Size)
	require.Equal(t, 1, res.Blocks)
	require.Empty(t, res.Error)
}

func TestRootInvalidFormat(t *testing.T) {
	path := writeFile(t, "abc.txt", "abc")

	_, err := executeCommand(t, "", "256", path, "--format", "xml")
	require.Error(t, err)
}

func TestRootInvalidWorkers(t *testing.T) {
	path := writeFile(t, "abc.txt", "abc")

	_, err := executeCommand(t, "", "256", path, "--workers", "0")
	require.ErrorIs(t, err, batch.ErrInvalidWorkers)
}

func TestRootExpect(t *testing.T) {
	path := writeFile(t, "abc.txt", "abc")

	_, err := executeCommand(t, "", "256", path, "--expect", strings.ToUpper(abc256))
	require.NoError(t, err)

	wrong := strings.Repeat("0", 64)
	out, err := executeCommand(t, "", "256", path, "--expect", wrong)
	require.ErrorIs(t, err, ErrDigestMismatch)
	require.Contains(t, out, "Expected "+wrong)

	// a 256-bit digest is the wrong size for SHA-224
	_, err = executeCommand(t, "", "224", path, "--expect", abc256)
	require.Error(t, err)

	_, err = executeCommand(t, "", "256", path, path, "--expect", abc256)
	require.Error(t, err)
}

func TestSelftest(t *testing.T) {
	out, err := executeCommand(t, "", "selftest")
	require.NoError(t, err)
	require.Contains(t, out, "all 10 vectors passed")
	require.NotContains(t, out, "FAIL")
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, out, "sha2sum v")
	require.Contains(t, out, "Go Version:")
}
