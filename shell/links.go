package shell

import (
	"fmt"
	"io"
	"path"

	"github.com/smarty/s25update/contracts"
)

type linkFileSystem interface {
	contracts.FileChecker
	CreateSymlink(source, target string) error
	CopyFile(source, target string) error
}

// NewLinkCreator picks symlinks where unprivileged processes can create them
// and plain copies elsewhere (Windows).
func NewLinkCreator(goos string, fileSystem linkFileSystem, stdout io.Writer) contracts.LinkCreator {
	if goos == "windows" {
		return NewCopyCreator(fileSystem, stdout)
	}
	return NewSymlinkCreator(fileSystem, stdout)
}

type SymlinkCreator struct {
	fileSystem linkFileSystem
	stdout     io.Writer
}

func NewSymlinkCreator(fileSystem linkFileSystem, stdout io.Writer) *SymlinkCreator {
	return &SymlinkCreator{fileSystem: fileSystem, stdout: stdout}
}

// CreateLink does nothing when linkPath already exists (as a file, directory
// or link, dangling or not).
func (this *SymlinkCreator) CreateLink(linkPath, targetName string) error {
	_, _ = fmt.Fprintf(this.stdout, "Creating symlink %q\n", linkPath)
	if contracts.Exists(this.fileSystem, linkPath) {
		return nil
	}
	return this.fileSystem.CreateSymlink(targetName, linkPath)
}

type CopyCreator struct {
	fileSystem linkFileSystem
	stdout     io.Writer
}

func NewCopyCreator(fileSystem linkFileSystem, stdout io.Writer) *CopyCreator {
	return &CopyCreator{fileSystem: fileSystem, stdout: stdout}
}

// CreateLink always copies, overwriting whatever is at linkPath.
func (this *CopyCreator) CreateLink(linkPath, targetName string) error {
	source := path.Join(path.Dir(linkPath), targetName)
	_, _ = fmt.Fprintf(this.stdout, "Copying file %q\n", source)
	return this.fileSystem.CopyFile(source, linkPath)
}
