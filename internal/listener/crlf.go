package listener

import (
	"bytes"
	"io"
)

// lineEndings adapts a network connection to the session layer's
// \n-only world. Telnet clients send \r\n or \r\x00 (NVT bare CR),
// ssh channels without a pty send a lone \r; outbound narration needs
// \r\n or raw telnet clients staircase every wrapped line.
type lineEndings struct {
	rw io.ReadWriter
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &lineEndings{rw: rw}
}

func (c *lineEndings) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	if n > 0 {
		data := bytes.ReplaceAll(p[:n], []byte("\r\n"), []byte("\n"))
		data = bytes.ReplaceAll(data, []byte("\r\x00"), []byte("\n"))
		data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
		n = copy(p, data)
	}
	return n, err
}

func (c *lineEndings) Write(p []byte) (int, error) {
	converted := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	_, err := c.rw.Write(converted)
	// Report the caller's length; the padding is a transport detail.
	return len(p), err
}
