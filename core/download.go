package core

import (
	"errors"
	"io"
	"net/url"

	"github.com/smarty/s25update/contracts"
)

func downloadString(downloader contracts.Downloader, address url.URL) (string, error) {
	body, _, err := downloader.Download(address)
	if err != nil {
		return "", err
	}
	defer closeResource(body)
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func closeResource(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

var errEmptyFileList = errors.New("empty file list")
