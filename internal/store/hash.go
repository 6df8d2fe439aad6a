package store

import (
	"crypto/sha256"
	"fmt"
)

// HashNoteContent computes SHA-256 of title + content for import dedup.
//
// Including the title means identical content under two different titles
// creates two separate notes.
func HashNoteContent(title, content string) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte{0}) // separator
	h.Write([]byte(content))
	return fmt.Sprintf("%x", h.Sum(nil))
}
