package verify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mirrorcheck/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// runEnv is a complete verification fixture: a remote serving a set of
// named blobs, matching (or deliberately diverging) local files, a URL
// list and a ledger.
type runEnv struct {
	t          *testing.T
	srv        *httptest.Server
	dir        string
	ledgerPath string
	remote     map[string][]byte
}

func newRunEnv(t *testing.T) *runEnv {
	t.Helper()
	env := &runEnv{
		t:      t,
		dir:    t.TempDir(),
		remote: make(map[string][]byte),
	}
	env.ledgerPath = filepath.Join(env.dir, "ledger.txt")
	mux := http.NewServeMux()
	mux.HandleFunc("/pool/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/pool/")
		body, ok := env.remote[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	})
	env.srv = httptest.NewServer(mux)
	t.Cleanup(env.srv.Close)
	return env
}

// addFile creates a local file and, unless remote is nil, a remote blob of
// the same name. Returns the local path.
func (e *runEnv) addFile(name string, local, remote []byte) string {
	e.t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(e.t, os.WriteFile(path, local, 0o644))
	if remote != nil {
		e.remote[name] = remote
	}
	return path
}

// sourceList builds a TableSource over the given names.
func (e *runEnv) sourceList(names ...string) Source {
	e.t.Helper()
	var list strings.Builder
	for _, n := range names {
		fmt.Fprintf(&list, "%s/pool/%s\n", e.srv.URL, n)
	}
	src, err := NewTableSource(strings.NewReader(list.String()))
	require.NoError(e.t, err)
	return src
}

// run opens the ledger, executes a full run and closes the ledger again.
func (e *runEnv) run(src Source, files []string) (*Counters, string) {
	e.t.Helper()
	led, err := ledger.Open(e.ledgerPath)
	require.NoError(e.t, err)
	defer led.Close()

	client := newTestClient(e.t)
	out := &bytes.Buffer{}
	svc := NewService(src, led, NewVerifier(client, 0), NewProber(client), nil, zap.NewNop(), out)

	counters, err := svc.Run(context.Background(), files)
	require.NoError(e.t, err)
	return counters, out.String()
}

func TestService_Run(t *testing.T) {
	t.Run("Full run classifies every item", func(t *testing.T) {
		env := newRunEnv(t)
		good := env.addFile("good.bin", []byte("same content"), []byte("same content"))
		bad := env.addFile("bad.bin", []byte("local bytes"), []byte("other bytes"))
		orphan := env.addFile("orphan.bin", []byte("anything"), nil)

		// unclaimed.bin is listed but has no local file and is live
		env.remote["unclaimed.bin"] = []byte("still here")
		// vanished.bin is listed, unclaimed and gone remotely
		src := env.sourceList("good.bin", "bad.bin", "unclaimed.bin", "vanished.bin")

		counters, out := env.run(src, []string{good, bad, orphan, env.dir})

		assert.Equal(t, 1, counters.Good)
		assert.Equal(t, 1, counters.Bad)
		assert.Equal(t, 1, counters.NA)
		assert.Equal(t, 2, counters.Error) // missing source + available

		assert.Contains(t, out, "loaded: 0 good, 0 bad, 0 n/a, 0 error")
		assert.Contains(t, out, "good.bin: good (")
		assert.Contains(t, out, "bad.bin: bad (")
		assert.Contains(t, out, "orphan.bin: error: missing source")
		assert.Contains(t, out, env.dir+": error: not a file")
		assert.Contains(t, out, "unclaimed.bin: error: available")
		assert.Contains(t, out, "vanished.bin: n/a")
		assert.Contains(t, out, "finished: 1 good, 1 bad, 1 n/a, 2 error")

		entries, err := ledger.Load(env.ledgerPath)
		require.NoError(t, err)
		assert.Len(t, entries, 5) // the directory is not ledgered
	})

	t.Run("Second run re-decides nothing", func(t *testing.T) {
		env := newRunEnv(t)
		good := env.addFile("good.bin", []byte("same content"), []byte("same content"))
		bad := env.addFile("bad.bin", []byte("local bytes"), []byte("other bytes"))
		env.remote["unclaimed.bin"] = []byte("still here")

		first, _ := env.run(env.sourceList("good.bin", "bad.bin", "unclaimed.bin"), []string{good, bad})
		before, err := ledger.Load(env.ledgerPath)
		require.NoError(t, err)

		// Fresh source table, same ledger: everything replays as decided
		second, out := env.run(env.sourceList("good.bin", "bad.bin", "unclaimed.bin"), []string{good, bad})
		after, err := ledger.Load(env.ledgerPath)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, before, after)
		assert.Contains(t, out, "loaded: 1 good, 1 bad, 0 n/a, 1 error")
		assert.Contains(t, out, "finished: 1 good, 1 bad, 0 n/a, 1 error")
		assert.NotContains(t, out, "good.bin:")
	})

	t.Run("Interrupted batch resumes where it left off", func(t *testing.T) {
		env := newRunEnv(t)
		a := env.addFile("a.bin", []byte("aa"), []byte("aa"))
		b := env.addFile("b.bin", []byte("bb"), []byte("bb"))

		// First run died after a.bin: b.bin never made it into its table,
		// so the probe pass cannot decide it prematurely
		counters, _ := env.run(env.sourceList("a.bin"), []string{a})
		assert.Equal(t, 1, counters.Good)

		counters, out := env.run(env.sourceList("a.bin", "b.bin"), []string{a, b})
		assert.Equal(t, 2, counters.Good)
		assert.NotContains(t, out, "a.bin:")
		assert.Contains(t, out, "b.bin: good (")
	})

	t.Run("Template source skips the probe pass", func(t *testing.T) {
		env := newRunEnv(t)
		good := env.addFile("good.bin", []byte("same content"), []byte("same content"))

		src := TemplateSource{Pattern: env.srv.URL + "/pool/{}"}
		counters, out := env.run(src, []string{good})

		assert.Equal(t, 1, counters.Good)
		// Per-item tokens only: the summary lines always say "0 n/a"
		assert.NotContains(t, out, ": n/a")
		assert.NotContains(t, out, "available")
	})
}
