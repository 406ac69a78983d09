package core

import (
	"net/url"
	"strconv"

	"github.com/smartystreets/logging"

	"github.com/smarty/s25update/contracts"
)

const (
	updaterPath       = "updater"
	fallbackMirrorMax = 5
)

// MirrorCandidates lists the base locations to probe, newest first:
// {host}{channel}/{target}.{arch}/updater followed by the .1 through .5 snapshots.
func MirrorCandidates(config contracts.Config) (candidates []url.URL) {
	platform := config.Target + "." + config.Arch
	candidates = append(candidates, contracts.AppendRemotePath(config.Host, config.Channel(), platform, updaterPath))
	for x := 1; x <= fallbackMirrorMax; x++ {
		snapshot := platform + "." + strconv.Itoa(x)
		candidates = append(candidates, contracts.AppendRemotePath(config.Host, config.Channel(), snapshot, updaterPath))
	}
	return candidates
}

type MirrorResolver struct {
	logger     *logging.Logger
	downloader contracts.Downloader
	candidates []url.URL
	verbose    bool
}

func NewMirrorResolver(downloader contracts.Downloader, candidates []url.URL, verbose bool) *MirrorResolver {
	return &MirrorResolver{downloader: downloader, candidates: candidates, verbose: verbose}
}

// Resolve probes each candidate in order and returns the first one serving a
// non-empty file list. That base stays fixed for the remainder of the run.
func (this *MirrorResolver) Resolve() (base url.URL, fileList string, err error) {
	for x, candidate := range this.candidates {
		address := contracts.AppendRemotePath(candidate, contracts.RemoteFileList)
		if this.verbose {
			this.logger.Printf("[INFO] Trying to download update filelist from '%s'", address.String())
		}
		raw, err := downloadString(this.downloader, address)
		if err == nil && raw == "" {
			err = errEmptyFileList
		}
		if err != nil {
			this.logger.Printf("[WARN] Was not able to get update filelist %d (%s), trying older one", x, err)
			continue
		}
		return candidate, raw, nil
	}
	return url.URL{}, "", contracts.ErrNoManifest
}
