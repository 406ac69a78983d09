package core

import (
	"fmt"
	"io"
	"net/url"

	"github.com/smartystreets/logging"

	"github.com/smarty/s25update/contracts"
)

type (
	mirrorResolver interface {
		Resolve() (base url.URL, fileList string, err error)
	}
	savegameGate interface {
		Proceed(base url.URL, entries []contracts.FileEntry) bool
	}
	fileReconciler interface {
		Reconcile(base url.URL, entries []contracts.FileEntry) (updated []string, err error)
	}
	linkReconciler interface {
		Reconcile(entries []contracts.LinkEntry) (applied, failed int)
	}
)

// Updater runs one update: locate a mirror, read the file list, consult the
// savegame gate, then reconcile files followed by links.
type Updater struct {
	logger     *logging.Logger
	resolver   mirrorResolver
	gate       savegameGate
	files      fileReconciler
	links      linkReconciler
	downloader contracts.Downloader
	stdout     io.Writer
	verbose    bool
}

func NewUpdater(
	resolver mirrorResolver,
	gate savegameGate,
	files fileReconciler,
	links linkReconciler,
	downloader contracts.Downloader,
	stdout io.Writer,
	verbose bool,
) *Updater {
	return &Updater{
		resolver:   resolver,
		gate:       gate,
		files:      files,
		links:      links,
		downloader: downloader,
		stdout:     stdout,
		verbose:    verbose,
	}
}

func (this *Updater) Update() (result contracts.Result, err error) {
	this.info("Requesting current version information from server...")
	base, fileList, err := this.resolver.Resolve()
	if err != nil {
		return result, err
	}

	this.info("Parsing update list...")
	files, err := ParseFileList(fileList)
	if err != nil {
		return result, err
	}

	if !this.gate.Proceed(base, files) {
		result.Cancelled = true
		return result, nil
	}

	links, err := this.loadLinks(base)
	if err != nil {
		return result, err
	}

	result.Updated, err = this.files.Reconcile(base, files)
	result.Changed = len(result.Updated) > 0
	if err != nil {
		return result, err
	}

	this.info("Updating folder structure...")
	result.LinksApplied, result.LinkFailures = this.links.Reconcile(links)

	if result.Changed {
		_, _ = fmt.Fprintln(this.stdout, "Update finished!")
	}
	return result, nil
}

// loadLinks treats a missing link list as empty; only a malformed one is an error.
func (this *Updater) loadLinks(base url.URL) ([]contracts.LinkEntry, error) {
	raw, err := downloadString(this.downloader, contracts.AppendRemotePath(base, contracts.RemoteLinkList))
	if err != nil {
		this.logger.Printf("[WARN] Was not able to get linkfile (%s), ignoring", err)
		return nil, nil
	}
	return ParseLinkList(raw)
}

func (this *Updater) info(message string) {
	if this.verbose {
		this.logger.Println("[INFO]", message)
	}
}
