package verify

import (
	"bytes"
	"io"
	"os"
)

// DefaultChunkSize bounds how much of a transfer is compared at a time.
const DefaultChunkSize = 16 * 1024

// ChunkComparator compares a stream of remote chunks against a local file.
// A mismatch is sticky: once observed it never clears, but Consume keeps
// accepting chunks so the transfer can complete normally. Aborting
// mid-transfer would trade a clean bad verdict for a transport error and
// ruin the throughput figure.
type ChunkComparator struct {
	file     *os.File
	size     int64
	pos      int64
	buf      []byte
	mismatch bool
}

// NewChunkComparator prepares a comparator over file, which must be
// positioned at the start.
func NewChunkComparator(file *os.File, chunkSize int) (*ChunkComparator, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	return &ChunkComparator{
		file: file,
		size: info.Size(),
		buf:  make([]byte, chunkSize),
	}, nil
}

// Consume compares the next remote chunk against the file at the current
// cursor and reports the mismatch state so far. A local read that comes up
// short is a mismatch, not an I/O error: a local file shorter than the
// remote content is exactly the divergence being tested for.
func (c *ChunkComparator) Consume(chunk []byte) bool {
	if len(chunk) == 0 {
		return c.mismatch
	}
	if len(chunk) > len(c.buf) {
		c.buf = make([]byte, len(chunk))
	}
	local := c.buf[:len(chunk)]
	n, err := io.ReadFull(c.file, local)
	c.pos += int64(n)
	if err != nil || !bytes.Equal(chunk, local) {
		c.mismatch = true
	}
	return c.mismatch
}

// Finish reports the final verdict once the transfer has completed: true
// only if no chunk ever mismatched and the remote content covered the local
// file exactly. A remote shorter than the local file leaves the cursor
// before the end; a longer one already tripped the mismatch flag on an
// over-read chunk.
func (c *ChunkComparator) Finish() bool {
	return !c.mismatch && c.pos == c.size
}
