package shell

import (
	"io"
	"os"
	"path/filepath"
)

// DiskFileSystem resolves relative paths against root; absolute paths are
// used as given.
type DiskFileSystem struct{ root string }

func NewDiskFileSystem(root string) *DiskFileSystem {
	return &DiskFileSystem{root: filepath.Clean(root)}
}

func (this *DiskFileSystem) resolve(path string) string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(this.root, path)
}

func (this *DiskFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Lstat(this.resolve(path))
}

func (this *DiskFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(this.resolve(path))
}

func (this *DiskFileSystem) Create(path string) (io.WriteCloser, error) {
	return os.Create(this.resolve(path))
}

func (this *DiskFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(this.resolve(path), 0755)
}

func (this *DiskFileSystem) Rename(source, target string) error {
	return os.Rename(this.resolve(source), this.resolve(target))
}

func (this *DiskFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(this.resolve(path))
}

func (this *DiskFileSystem) WriteFile(path string, content []byte) error {
	return os.WriteFile(this.resolve(path), content, 0644)
}

func (this *DiskFileSystem) Delete(path string) error {
	return os.Remove(this.resolve(path))
}

func (this *DiskFileSystem) CreateSymlink(source, target string) error {
	return os.Symlink(filepath.FromSlash(source), this.resolve(target))
}

func (this *DiskFileSystem) CopyFile(source, target string) error {
	reader, err := os.Open(this.resolve(source))
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	info, err := reader.Stat()
	if err != nil {
		return err
	}
	writer, err := os.OpenFile(this.resolve(target), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, reader)
	closeErr := writer.Close()
	if err != nil {
		return err
	}
	return closeErr
}
