package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ulysses-Xu/go-dbfcp/internal/cli"
)

// executeCommand runs the command line and captures its output.
func executeCommand(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeDBF(t *testing.T, codePage byte) string {
	t.Helper()
	today := time.Now()
	buf := make([]byte, 34)
	buf[0] = 0x03
	buf[1], buf[2], buf[3] = byte(today.Year()-1900), byte(today.Month()), byte(today.Day())
	buf[29] = codePage
	buf[32], buf[33] = 0x0D, 0x1A
	fileName := filepath.Join(t.TempDir(), "TEST.DBF")
	require.NoError(t, os.WriteFile(fileName, buf, 0o644))
	return fileName
}

func TestRootCmdHelp(t *testing.T) {
	code, stdout, stderr := executeCommand(t, "", "--help")

	assert.Equal(t, cli.ExitOK, code)
	assert.Empty(t, stderr)
	for _, want := range []string{"Usage:", "get", "set", "check", "resolve", "codepages", "decode", "--strict", "--types", "CP1252"} {
		assert.Contains(t, stdout, want)
	}
}

func TestRootCmdVersion(t *testing.T) {
	code, stdout, _ := executeCommand(t, "", "--version")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "dbfcp version dev (commit: none, built: unknown)\n", stdout)
}

func TestSetAndGet(t *testing.T) {
	fileName := writeDBF(t, 0x03)

	code, stdout, stderr := executeCommand(t, "", "set", "CP850", fileName)
	require.Equal(t, cli.ExitOK, code, stderr)
	assert.Contains(t, stdout, "changed")

	code, stdout, _ = executeCommand(t, "", "get", "--format", "json", fileName)
	require.Equal(t, cli.ExitOK, code)
	var rows []map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "CP850", rows[0]["code_page"])
	assert.Equal(t, "850", rows[0]["encoding"])
}

func TestExitCodes(t *testing.T) {
	valid := writeDBF(t, 0x01)
	invalid := writeDBF(t, 0x99)

	code, _, _ := executeCommand(t, "", "check", "CP437", valid)
	assert.Equal(t, cli.ExitOK, code)

	code, _, _ = executeCommand(t, "", "check", "CP850", valid)
	assert.Equal(t, cli.ExitFileFailed, code)

	code, _, stderr := executeCommand(t, "", "get", "--strict", invalid)
	assert.Equal(t, cli.ExitInvalidInput, code)
	assert.Contains(t, stderr, "code page mark")

	text := filepath.Join(t.TempDir(), "BAD.DBF")
	require.NoError(t, os.WriteFile(text, []byte("plain text"), 0o644))
	for _, args := range [][]string{{"get", text}, {"set", "CP850", text}, {"check", "CP850", text}} {
		code, _, _ = executeCommand(t, "", args...)
		assert.Equal(t, cli.ExitInvalidInput, code, args)
	}

	code, _, _ = executeCommand(t, "", "set", "CP9999", valid)
	assert.Equal(t, cli.ExitInvalidInput, code)

	code, _, _ = executeCommand(t, "", "get", "--format", "xml", valid)
	assert.Equal(t, cli.ExitInvalidInput, code)

	code, _, stderr = executeCommand(t, "", "set", "CP850")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, stderr, "--help")

	code, _, _ = executeCommand(t, "", "bogus")
	assert.Equal(t, cli.ExitUsage, code)
}

func TestVerboseLogsToStderr(t *testing.T) {
	fileName := writeDBF(t, 0x01)

	code, stdout, stderr := executeCommand(t, "", "get", "-v", fileName)
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout, "CP437")
	assert.Contains(t, stderr, "read dbf header")
}

func TestDecode(t *testing.T) {
	code, stdout, _ := executeCommand(t, "\x8f\xe0\xa8\xa2\xa5\xe2", "decode", "--codepage", "CP866")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "Привет", stdout)
}
