package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Replay(t *testing.T) {
	t.Run("Well-formed entries in file order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.txt")
		content := "a.bin: good\nb.bin: bad\nc.bin: n/a\nd.bin: error: connection refused\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		led, err := Open(path)
		require.NoError(t, err)
		defer led.Close()

		var got []Entry
		require.NoError(t, led.Replay(func(e Entry) { got = append(got, e) }))
		assert.Equal(t, []Entry{
			{Name: "a.bin", Status: "good"},
			{Name: "b.bin", Status: "bad"},
			{Name: "c.bin", Status: "n/a"},
			{Name: "d.bin", Status: "error: connection refused"},
		}, got)
	})

	t.Run("Malformed lines are skipped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.txt")
		content := "no separator here\na.bin: good\n:broken\n\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		led, err := Open(path)
		require.NoError(t, err)
		defer led.Close()

		var got []Entry
		require.NoError(t, led.Replay(func(e Entry) { got = append(got, e) }))
		assert.Equal(t, []Entry{{Name: "a.bin", Status: "good"}}, got)
	})

	t.Run("CRLF line endings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.txt")
		require.NoError(t, os.WriteFile(path, []byte("a.bin: good\r\nb.bin: bad\r\n"), 0o644))

		led, err := Open(path)
		require.NoError(t, err)
		defer led.Close()

		var got []Entry
		require.NoError(t, led.Replay(func(e Entry) { got = append(got, e) }))
		assert.Equal(t, []Entry{
			{Name: "a.bin", Status: "good"},
			{Name: "b.bin", Status: "bad"},
		}, got)
	})

	t.Run("Missing file is created empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.txt")

		led, err := Open(path)
		require.NoError(t, err)
		defer led.Close()

		count := 0
		require.NoError(t, led.Replay(func(Entry) { count++ }))
		assert.Zero(t, count)
	})
}

func TestLedger_Append(t *testing.T) {
	t.Run("Appends after replay without truncating", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.txt")
		require.NoError(t, os.WriteFile(path, []byte("old.bin: good\n"), 0o644))

		led, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, led.Replay(func(Entry) {}))
		require.NoError(t, led.Append("new.bin", "bad"))
		require.NoError(t, led.Append("odd.bin", "error: timeout"))
		require.NoError(t, led.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old.bin: good\nnew.bin: bad\nodd.bin: error: timeout\n", string(data))
	})

	t.Run("Entries survive reopening", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.txt")

		led, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, led.Append("a.bin", "good"))
		require.NoError(t, led.Close())

		entries, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []Entry{{Name: "a.bin", Status: "good"}}, entries)
	})
}

func TestLedger_Lock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.txt")

	led, err := Open(path)
	require.NoError(t, err)

	_, err = Open(path)
	assert.Error(t, err, "a second holder must be rejected")

	require.NoError(t, led.Close())

	led2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, led2.Close())
}

func TestLoad(t *testing.T) {
	t.Run("Reads without locking", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.txt")

		led, err := Open(path)
		require.NoError(t, err)
		defer led.Close()
		require.NoError(t, led.Append("a.bin", "good"))

		// The writer still holds the lock
		entries, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})
}
