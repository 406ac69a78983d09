package core

import (
	"encoding/hex"
	"hash"
	"io"

	"github.com/smarty/s25update/contracts"
)

// FileHasher computes the hex digest of a local file. A file that is missing
// or unreadable hashes to the empty string, which never matches a manifest entry.
type FileHasher struct {
	hasher     func() hash.Hash
	fileSystem contracts.FileOpener
}

func NewFileHasher(hasher func() hash.Hash, fileSystem contracts.FileOpener) *FileHasher {
	return &FileHasher{hasher: hasher, fileSystem: fileSystem}
}

func (this *FileHasher) Checksum(path string) string {
	source, err := this.fileSystem.Open(path)
	if err != nil {
		return ""
	}
	defer closeResource(source)

	reader := NewHashReader(source, this.hasher())
	if _, err = io.Copy(io.Discard, reader); err != nil {
		return ""
	}
	return hex.EncodeToString(reader.Sum(nil))
}
