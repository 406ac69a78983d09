package core

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path"
	"time"
)

type inMemoryFileSystem struct {
	files       map[string][]byte
	directories map[string]struct{}
	errCreate   map[string]int
	errWrite    map[string]error
	errRename   map[string]error
	errMkdir    map[string]error
	errDelete   map[string]error
	errReadFile map[string]error
}

func newInMemoryFileSystem() *inMemoryFileSystem {
	return &inMemoryFileSystem{
		files:       make(map[string][]byte),
		directories: make(map[string]struct{}),
		errCreate:   make(map[string]int),
		errWrite:    make(map[string]error),
		errRename:   make(map[string]error),
		errMkdir:    make(map[string]error),
		errDelete:   make(map[string]error),
		errReadFile: make(map[string]error),
	}
}

func (this *inMemoryFileSystem) Open(path string) (io.ReadCloser, error) {
	contents, found := this.files[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(contents)), nil
}

func (this *inMemoryFileSystem) Create(path string) (io.WriteCloser, error) {
	if this.errCreate[path] > 0 {
		this.errCreate[path]--
		return nil, errCreateFailed
	}
	this.files[path] = []byte{}
	return &memoryWriter{fileSystem: this, path: path, err: this.errWrite[path]}, nil
}

func (this *inMemoryFileSystem) MkdirAll(path string) error {
	if err := this.errMkdir[path]; err != nil {
		return err
	}
	this.directories[path] = struct{}{}
	return nil
}

func (this *inMemoryFileSystem) Rename(source, target string) error {
	if err := this.errRename[source]; err != nil {
		return err
	}
	contents, found := this.files[source]
	if !found {
		return os.ErrNotExist
	}
	this.files[target] = contents
	delete(this.files, source)
	return nil
}

func (this *inMemoryFileSystem) Delete(path string) error {
	if err := this.errDelete[path]; err != nil {
		return err
	}
	if _, found := this.files[path]; !found {
		return os.ErrNotExist
	}
	delete(this.files, path)
	return nil
}

func (this *inMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	contents, found := this.files[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return contents, this.errReadFile[path]
}

func (this *inMemoryFileSystem) Stat(path string) (os.FileInfo, error) {
	if contents, found := this.files[path]; found {
		return &memoryFileInfo{path: path, size: int64(len(contents))}, nil
	}
	if _, found := this.directories[path]; found {
		return &memoryFileInfo{path: path, directory: true}, nil
	}
	return nil, os.ErrNotExist
}

func (this *inMemoryFileSystem) WriteFile(path string, contents string) {
	this.files[path] = []byte(contents)
}

func (this *inMemoryFileSystem) contents(path string) string {
	return string(this.files[path])
}

/////////////////////////////////////////////////

type memoryWriter struct {
	fileSystem *inMemoryFileSystem
	path       string
	err        error
}

func (this *memoryWriter) Write(p []byte) (int, error) {
	if this.err != nil {
		return 0, this.err
	}
	this.fileSystem.files[this.path] = append(this.fileSystem.files[this.path], p...)
	return len(p), nil
}

func (this *memoryWriter) Close() error { return nil }

type memoryFileInfo struct {
	path      string
	size      int64
	directory bool
}

func (this *memoryFileInfo) Name() string       { return path.Base(this.path) }
func (this *memoryFileInfo) Size() int64        { return this.size }
func (this *memoryFileInfo) Mode() os.FileMode  { return 0644 }
func (this *memoryFileInfo) ModTime() time.Time { return time.Time{} }
func (this *memoryFileInfo) IsDir() bool        { return this.directory }
func (this *memoryFileInfo) Sys() interface{}   { return nil }

var errCreateFailed = errors.New("create failed")
