package contracts

import (
	"io"
	"os"
)

// All paths are relative to the install root.

type FileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

type FileCreator interface {
	Create(path string) (io.WriteCloser, error)
}

type DirectoryMaker interface {
	MkdirAll(path string) error
}

type Renamer interface {
	Rename(source, target string) error
}

type Deleter interface {
	Delete(path string) error
}

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type FileChecker interface {
	Stat(path string) (os.FileInfo, error)
}

type FileSystem interface {
	FileOpener
	FileCreator
	DirectoryMaker
	Renamer
	Deleter
	FileReader
	FileChecker
}

// LinkCreator establishes linkPath so that it resolves to targetName,
// a sibling of linkPath.
type LinkCreator interface {
	CreateLink(linkPath, targetName string) error
}

func Exists(checker FileChecker, path string) bool {
	_, err := checker.Stat(path)
	return err == nil
}
