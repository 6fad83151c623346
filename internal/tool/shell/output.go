package shell

import (
	"bytes"

	"github.com/taeold/gemini-cli-core-codelab/internal/tool/service/fs"
)

// binarySampleSize is how many leading bytes are inspected for binary content.
const binarySampleSize = 8000

// collector captures command output with size limits and binary content detection.
type collector struct {
	buffer    bytes.Buffer
	maxBytes  int
	truncated bool
	isBinary  bool

	sample     []byte
	sampleSize int
}

func newCollector(maxBytes int, sampleSize int) *collector {
	return &collector{
		maxBytes:   maxBytes,
		sampleSize: sampleSize,
	}
}

func (c *collector) Write(p []byte) (int, error) {
	if c.isBinary {
		return len(p), nil
	}

	if len(c.sample) < c.sampleSize {
		take := min(len(p), c.sampleSize-len(c.sample))
		c.sample = append(c.sample, p[:take]...)
		if fs.IsBinary(c.sample) {
			c.isBinary = true
			c.truncated = true
			c.buffer.Reset()
			return len(p), nil
		}
	}

	remaining := c.maxBytes - c.buffer.Len()
	if remaining <= 0 {
		c.truncated = true
		return len(p), nil
	}

	toWrite := p
	if len(toWrite) > remaining {
		toWrite = toWrite[:remaining]
		c.truncated = true
	}
	c.buffer.Write(toWrite)

	return len(p), nil
}

func (c *collector) String() string {
	if c.isBinary {
		return "[Binary Content]"
	}
	return c.buffer.String()
}

func (c *collector) Truncated() bool {
	return c.truncated
}
