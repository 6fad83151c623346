package fs

import "github.com/gabriel-vasile/mimetype"

// DetectMIME returns the MIME type of content, e.g. "text/plain; charset=utf-8".
func DetectMIME(content []byte) string {
	return mimetype.Detect(content).String()
}

// IsBinary reports whether content is not some flavour of text.
// Empty content is text.
func IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	for m := mimetype.Detect(content); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return false
		}
	}
	return true
}
