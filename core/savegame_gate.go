package core

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/smartystreets/logging"

	"github.com/smarty/s25update/contracts"
)

type SavegameGateFileSystem interface {
	contracts.FileReader
	contracts.FileChecker
}

// SavegameGate asks the user whether to continue when the update would change
// the savegame format of the current installation.
type SavegameGate struct {
	logger     *logging.Logger
	downloader contracts.Downloader
	fileSystem SavegameGateFileSystem
	prompter   contracts.Prompter
	stdout     io.Writer
}

func NewSavegameGate(
	downloader contracts.Downloader,
	fileSystem SavegameGateFileSystem,
	prompter contracts.Prompter,
	stdout io.Writer,
) *SavegameGate {
	return &SavegameGate{
		downloader: downloader,
		fileSystem: fileSystem,
		prompter:   prompter,
		stdout:     stdout,
	}
}

// Proceed reports whether the update may continue. It only returns false
// when the user chose to cancel.
func (this *SavegameGate) Proceed(base url.URL, entries []contracts.FileEntry) bool {
	marker, found := findSavegameMarker(entries)
	if !found || !contracts.Exists(this.fileSystem, marker.Path) {
		return true
	}

	remote, err := downloadString(this.downloader, contracts.AppendRemotePath(base, contracts.SavegameVersion))
	if err != nil {
		this.logger.Printf("[WARN] Was not able to get remote savegame version (%s), ignoring for now", err)
		return true
	}
	local, err := this.fileSystem.ReadFile(marker.Path)
	if err != nil {
		this.logger.Printf("[WARN] Could not read local savegame version: %s", err)
		return true
	}

	localVersion, localErr := parseSavegameVersion(string(local))
	remoteVersion, remoteErr := parseSavegameVersion(remote)
	if localErr != nil || remoteErr != nil {
		this.logger.Printf("[WARN] Could not parse savegame versions\nCurrent: %s\nUpdate:  %s",
			strings.TrimSpace(string(local)), strings.TrimSpace(remote))
		return true
	}

	this.printf("Savegame version of currently installed version: %d\n", localVersion)
	this.printf("Savegame version of updated version: %d\n", remoteVersion)
	if localVersion == remoteVersion {
		this.printf("You will be able to load your existing savegames.\n")
		return true
	}
	this.printf("Warning: You will not be able to load your existing savegames.\n")
	return this.confirm()
}

func (this *SavegameGate) confirm() bool {
	answer, err := this.prompter.Prompt("Cancel update? (y/n) ")
	if err == nil && (answer == 'n' || answer == 'N') {
		this.printf("\nContinuing update.\n")
		return true
	}
	this.printf("\nCanceling update.\n")
	this.printf("Warning: You will not be able to play with players using a newer version.\n")
	return false
}

func (this *SavegameGate) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(this.stdout, format, args...)
}

func findSavegameMarker(entries []contracts.FileEntry) (contracts.FileEntry, bool) {
	for _, entry := range entries {
		if strings.Contains(entry.Path, contracts.SavegameMarkerPath) {
			return entry, true
		}
	}
	return contracts.FileEntry{}, false
}

func parseSavegameVersion(raw string) (int, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, errBlankSavegameVersion
	}
	return strconv.Atoi(fields[0])
}

var errBlankSavegameVersion = errors.New("blank savegame version")
