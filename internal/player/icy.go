package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
)

// maxMetaLen is the largest metadata block a station can announce
// (length byte 255 × 16).
const maxMetaLen = 255 * 16

// icyReader strips SHOUTcast/Icecast metadata blocks from a stream body.
// Every metaint audio bytes the server inserts one length byte followed
// by length×16 bytes of metadata such as StreamTitle='Artist - Song';.
type icyReader struct {
	r         *bufio.Reader
	metaint   int
	remaining int
	received  *atomic.Int64
	onTitle   func(string)
}

func newICYReader(r io.Reader, metaint int, received *atomic.Int64, onTitle func(string)) *icyReader {
	return &icyReader{
		r:         bufio.NewReader(r),
		metaint:   metaint,
		remaining: metaint,
		received:  received,
		onTitle:   onTitle,
	}
}

func (ir *icyReader) Read(p []byte) (int, error) {
	if ir.metaint <= 0 {
		n, err := ir.r.Read(p)
		ir.count(n)
		return n, err
	}

	if ir.remaining == 0 {
		if err := ir.readMeta(); err != nil {
			return 0, err
		}
		ir.remaining = ir.metaint
	}

	if len(p) > ir.remaining {
		p = p[:ir.remaining]
	}
	n, err := ir.r.Read(p)
	ir.remaining -= n
	ir.count(n)
	return n, err
}

func (ir *icyReader) count(n int) {
	if ir.received != nil {
		ir.received.Add(int64(n))
	}
}

func (ir *icyReader) readMeta() error {
	lenByte, err := ir.r.ReadByte()
	if err != nil {
		return err
	}
	ir.count(1)
	metaLen := int(lenByte) * 16
	if metaLen == 0 {
		return nil
	}
	if metaLen > maxMetaLen {
		return fmt.Errorf("icy metadata block too large: %d bytes", metaLen)
	}

	buf := make([]byte, metaLen)
	if _, err := io.ReadFull(ir.r, buf); err != nil {
		return err
	}
	ir.count(metaLen)

	if title, ok := parseStreamTitle(string(buf)); ok && ir.onTitle != nil {
		ir.onTitle(title)
	}
	return nil
}

// parseStreamTitle extracts the StreamTitle field from an ICY metadata
// block. The block is NUL padded.
func parseStreamTitle(meta string) (string, bool) {
	meta = strings.TrimRight(meta, "\x00")
	const key = "StreamTitle='"
	start := strings.Index(meta, key)
	if start < 0 {
		return "", false
	}
	start += len(key)
	end := strings.Index(meta[start:], "';")
	if end < 0 {
		// Some stations omit the trailing semicolon on the last field.
		end = strings.LastIndex(meta[start:], "'")
		if end < 0 {
			return "", false
		}
	}
	return strings.TrimSpace(meta[start : start+end]), true
}
