package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	local     string
	container string
	identity  string
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()
	base := t.TempDir()
	env := testEnv{
		local:     filepath.Join(base, "Documents"),
		container: filepath.Join(base, "container"),
		identity:  filepath.Join(base, "identity"),
	}
	require.NoError(t, os.MkdirAll(env.local, 0o755))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("DOCSTASH_LOCAL_DOCUMENTS", env.local)
	t.Setenv("DOCSTASH_CLOUD_CONTAINER", env.container)
	t.Setenv("DOCSTASH_CLOUD_IDENTITY_FILE", env.identity)
	t.Setenv("DOCSTASH_CACHE_DIR", filepath.Join(base, "cache"))
	t.Setenv("DOCSTASH_EXTENSION", "txt")
	t.Setenv("DOCSTASH_LOG_LEVEL", "error")
	return env
}

func execute(args ...string) (stdout string, stderr string, exitCode int) {
	var out, errOut bytes.Buffer
	exitCode = run(args, &out, &errOut)
	return out.String(), errOut.String(), exitCode
}

func writeDoc(t *testing.T, dir string, fileName string, content string, modified time.Time) {
	t.Helper()
	path := filepath.Join(dir, fileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, modified, modified))
}

func TestWhere(t *testing.T) {
	env := setupEnv(t)

	out, _, code := execute("-q", "where")
	assert.Equal(t, 0, code)
	assert.Equal(t, env.local+"\n", out)

	out, _, code = execute("where")
	assert.Equal(t, 0, code)
	assert.Equal(t, "local: "+env.local+"\n", out)

	_, errOut, code := execute("--cloud", "where")
	assert.Equal(t, 1, code, "container does not exist yet")
	assert.Contains(t, errOut, "No cloud documents folder available")

	require.NoError(t, os.MkdirAll(env.container, 0o755))
	require.NoError(t, os.WriteFile(env.identity, []byte("token"), 0o600))
	out, _, code = execute("-q", "where")
	assert.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(env.container, "Documents")+"\n", out, "identity file switches to cloud")

	out, _, code = execute("-q", "--local", "where")
	assert.Equal(t, 0, code)
	assert.Equal(t, env.local+"\n", out)
}

func TestExclusiveFlags(t *testing.T) {
	setupEnv(t)
	_, _, code := execute("-v", "-q", "where")
	assert.Equal(t, 1, code)
	_, _, code = execute("--cloud", "--local", "where")
	assert.Equal(t, 1, code)
}

func TestPath(t *testing.T) {
	env := setupEnv(t)

	out, _, code := execute("path", "Notes")
	assert.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(env.local, "Notes.txt")+"\n", out)

	out, _, code = execute("path", "--cache", "Notes")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), filepath.Join("cache", "Notes.txt")), out)

	_, errOut, code := execute("path", "../escape")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid name")
}

func TestList(t *testing.T) {
	env := setupEnv(t)
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	writeDoc(t, env.local, "Notes.txt", "notes", base)
	writeDoc(t, env.local, "draft.txt", "draft", base.Add(24*time.Hour))
	writeDoc(t, env.local, "picture.svg", "<svg/>", base)

	out, _, code := execute("list")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Notes.txt\ndraft.txt\n", out)

	out, _, code = execute("list", "--by", "modified")
	assert.Equal(t, 0, code)
	assert.Equal(t, "draft.txt\nNotes.txt\n", out)

	out, _, code = execute("list", "--match", "N*")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Notes.txt\n", out)

	out, _, code = execute("-v", "list")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "2 documents, 10 bytes")

	out, _, code = execute("list", "--tree", "--by", "modified")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "local://")
	assert.Contains(t, out, "2024")
	assert.Contains(t, out, "03")
	assert.Contains(t, out, "draft.txt")

	out, _, code = execute("-v", "list", "--match", "d*")
	assert.Equal(t, 0, code)
	assert.Equal(t, "draft.txt\n1 document, 5 bytes\n", out)

	_, errOut, code := execute("list", "--by", "size")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown sort order")

	_, errOut, code = execute("list", "--match", "[")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid match pattern")
}

func TestAvailable(t *testing.T) {
	env := setupEnv(t)
	writeDoc(t, env.local, "Untitled.txt", "", time.Now())
	writeDoc(t, env.local, "Untitled 1.txt", "", time.Now())

	out, _, code := execute("available", "untitled")
	assert.Equal(t, 0, code)
	assert.Equal(t, "\"untitled\" is taken, next free name: untitled 2\n", out)

	out, _, code = execute("available", "Letter")
	assert.Equal(t, 0, code)
	assert.Equal(t, "\"Letter\" is available\n", out)

	_, _, code = execute("available", ".hidden")
	assert.Equal(t, 1, code)
}

func TestInfo(t *testing.T) {
	env := setupEnv(t)
	modified := time.Date(2023, 7, 1, 8, 30, 0, 0, time.Local)
	writeDoc(t, env.local, "Notes.txt", "hello", modified)

	out, _, code := execute("info", "Notes")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Notes.txt")
	assert.Contains(t, out, "modified:  2023-07-01 08:30:00")
	assert.Contains(t, out, "size:      5 bytes")
	assert.Contains(t, out, "type:      text/plain")
	assert.Contains(t, out, "created:")

	_, errOut, code := execute("info", "missing")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "not found")
}

func TestNew(t *testing.T) {
	env := setupEnv(t)

	out, _, code := execute("-q", "new", "--yes")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Untitled\n", out)
	assert.FileExists(t, filepath.Join(env.local, "Untitled.txt"))

	out, _, code = execute("-q", "new", "-y")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Untitled 1\n", out)

	out, _, code = execute("new", "-y", "Letter")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "=> [YES]")
	assert.Contains(t, out, "Created Letter\n")
	info, err := os.Stat(filepath.Join(env.local, "Letter.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	_, errOut, code := execute("--cloud", "new", "-y")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "No cloud documents folder available")
}

func TestCreateDocumentRetriesOnConcurrentClaim(t *testing.T) {
	env := setupEnv(t)
	var out bytes.Buffer
	s := &session{out: &out, errOut: &out, quiet: true}
	require.NoError(t, s.setup())

	var requests []string
	s.choose = func(request string, options []string, cleanup bool) string {
		requests = append(requests, request)
		//another process grabs the proposed name right after allocation
		require.NoError(t, os.WriteFile(filepath.Join(env.local, "Report.txt"), nil, 0o644))
		return options[0]
	}
	require.NoError(t, s.createDocument("Report"))
	require.Len(t, requests, 2, "a substituted name is confirmed again")
	assert.Contains(t, requests[0], "Report.txt")
	assert.Contains(t, requests[1], "Report 1.txt")
	assert.Equal(t, "Report 1\n", out.String())
	assert.FileExists(t, filepath.Join(env.local, "Report 1.txt"))
}

func TestSubstitutedNameIsReported(t *testing.T) {
	env := setupEnv(t)
	var out bytes.Buffer
	s := &session{out: &out, errOut: &out}
	require.NoError(t, s.setup())

	answers := 0
	s.choose = func(request string, options []string, cleanup bool) string {
		answers++
		if answers == 1 {
			require.NoError(t, os.WriteFile(filepath.Join(env.local, "Memo.txt"), nil, 0o644))
			return options[0]
		}
		return "no"
	}
	require.NoError(t, s.createDocument("Memo"))
	assert.Contains(t, out.String(), "Memo.txt was taken in the meantime")
	assert.Contains(t, out.String(), "Nothing created")
	assert.NoFileExists(t, filepath.Join(env.local, "Memo 1.txt"))
}

func TestDirectoryOccupiesName(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.Mkdir(filepath.Join(env.local, "Untitled.txt"), 0o755))

	out, _, code := execute("list")
	assert.Equal(t, 0, code)
	assert.Empty(t, out, "directories are not documents")

	out, _, code = execute("available", "Untitled")
	assert.Equal(t, 0, code)
	assert.Equal(t, "\"Untitled\" is taken, next free name: Untitled 1\n", out)

	out, _, code = execute("-q", "new", "-y")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Untitled 1\n", out)
	assert.FileExists(t, filepath.Join(env.local, "Untitled 1.txt"))
}

func TestPromptDeclined(t *testing.T) {
	env := setupEnv(t)
	var out bytes.Buffer
	s := &session{out: &out, errOut: &out}
	require.NoError(t, s.setup())

	s.choose = func(string, []string, bool) string { return "no" }
	require.NoError(t, s.createDocument("Skipped"))
	assert.NoFileExists(t, filepath.Join(env.local, "Skipped.txt"))

	s.choose = func(string, []string, bool) string { return ChoiceAborted }
	assert.ErrorIs(t, s.createDocument("Skipped"), errReported)
	assert.NoFileExists(t, filepath.Join(env.local, "Skipped.txt"))
}
