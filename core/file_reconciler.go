package core

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/smartystreets/logging"

	"github.com/smarty/s25update/contracts"
)

const progressLabelWidth = 50

// FileReconciler brings every manifest entry up to date, one file at a time.
// The first download or extraction failure aborts the run; a partially
// applied update is preferable to one that silently skipped files.
type FileReconciler struct {
	logger       *logging.Logger
	downloader   contracts.Downloader
	decompressor contracts.Decompressor
	fileSystem   contracts.FileSystem
	checksums    *FileHasher
	hasher       func() hash.Hash
	progress     contracts.ProgressReporter
	stdout       io.Writer
	verbose      bool
}

func NewFileReconciler(
	downloader contracts.Downloader,
	decompressor contracts.Decompressor,
	fileSystem contracts.FileSystem,
	hasher func() hash.Hash,
	progress contracts.ProgressReporter,
	stdout io.Writer,
	verbose bool,
) *FileReconciler {
	return &FileReconciler{
		downloader:   downloader,
		decompressor: decompressor,
		fileSystem:   fileSystem,
		checksums:    NewFileHasher(hasher, fileSystem),
		hasher:       hasher,
		progress:     progress,
		stdout:       stdout,
		verbose:      verbose,
	}
}

// Reconcile returns the paths that were replaced, in manifest order.
func (this *FileReconciler) Reconcile(base url.URL, entries []contracts.FileEntry) (updated []string, err error) {
	for _, entry := range entries {
		if strings.EqualFold(this.checksums.Checksum(entry.Path), entry.Hash) {
			continue
		}
		err = this.update(base, entry)
		if err != nil {
			return updated, err
		}
		updated = append(updated, entry.Path)
	}
	return updated, nil
}

func (this *FileReconciler) update(base url.URL, entry contracts.FileEntry) error {
	directory, name := path.Split(entry.Path)
	directory = strings.TrimSuffix(directory, "/")

	this.printf("Updating %s", name)
	if this.verbose && directory != "" {
		this.printf(" to %s", directory)
	}
	this.printf("\n")

	if directory != "" {
		err := this.fileSystem.MkdirAll(directory)
		if err != nil {
			return fmt.Errorf("failed to create directories to path %q for %q: %w", directory, name, err)
		}
	}

	compressed := entry.Path + contracts.CompressedExt
	address := contracts.AppendRemotePath(base, directory, name+contracts.CompressedExt)
	err := this.download(address, compressed, progressLabel(name))
	this.printf(" - ")
	if err != nil {
		this.printf("failed!\n")
		return err
	}

	err = this.extract(compressed, entry)
	if err != nil {
		return err
	}
	this.printf("ok\n")

	err = this.fileSystem.Delete(compressed)
	if err != nil {
		this.logger.Printf("[WARN] Could not remove %q: %s", compressed, err)
	}
	return nil
}

// download writes to a pending file first so an interrupted transfer never
// leaves a truncated artifact under the final name.
func (this *FileReconciler) download(address url.URL, target, label string) error {
	body, size, err := this.downloader.Download(address)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", contracts.ErrDownloadFailed, target, err)
	}
	defer closeResource(body)

	pending := target + contracts.PendingSuffix
	writer, err := this.fileSystem.Create(pending)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", contracts.ErrDownloadFailed, target, err)
	}

	progress := NewProgressWriter(label, size, this.progress)
	_, err = io.Copy(io.MultiWriter(writer, progress), body)
	_ = progress.Close()
	closeErr := writer.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = this.fileSystem.Rename(pending, target)
	}
	if err != nil {
		_ = this.fileSystem.Delete(pending)
		return fmt.Errorf("%w: %s: %v", contracts.ErrDownloadFailed, target, err)
	}
	return nil
}

func (this *FileReconciler) extract(compressed string, entry contracts.FileEntry) error {
	source, err := this.fileSystem.Open(compressed)
	if err != nil {
		return fmt.Errorf("%w: download failure? %v", contracts.ErrDecompressionFailed, err)
	}
	defer closeResource(source)

	target, err := this.openDestination(entry.Path)
	if err != nil {
		return err
	}

	hasher := this.hasher()
	err = this.decompressor.Decompress(source, io.MultiWriter(target, hasher))
	closeErr := target.Close()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", contracts.ErrDecompressionFailed, entry.Path, err)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: %s: %v", contracts.ErrDecompressionFailed, entry.Path, closeErr)
	}

	if actual := hex.EncodeToString(hasher.Sum(nil)); !strings.EqualFold(actual, entry.Hash) {
		this.logger.Printf("[WARN] Checksum mismatch for %q after update (expected: [%s], actual: [%s])",
			entry.Path, entry.Hash, actual)
	}
	return nil
}

// openDestination moves a file that cannot be opened for writing (typically
// because a running process holds it) aside to a backup before retrying.
func (this *FileReconciler) openDestination(filePath string) (io.WriteCloser, error) {
	target, err := this.fileSystem.Create(filePath)
	if err == nil {
		return target, nil
	}

	err = this.fileSystem.Rename(filePath, filePath+contracts.BackupSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to move blocked file %s out of the way: %w", filePath, err)
	}
	target, err = this.fileSystem.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %s: %w", filePath, err)
	}
	return target, nil
}

func (this *FileReconciler) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(this.stdout, format, args...)
}

func progressLabel(name string) string {
	label := "Downloading " + name
	if len(label) < progressLabelWidth {
		label += strings.Repeat(" ", progressLabelWidth-len(label))
	}
	return label
}
