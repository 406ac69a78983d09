package contracts

import (
	"errors"
	"io"
	"net/url"
	"path"
)

// Downloader performs a GET of address. Size is the announced content length
// or -1 when unknown.
type Downloader interface {
	Download(address url.URL) (body io.ReadCloser, size int64, err error)
}

// Decompressor streams the decompressed form of source into target.
type Decompressor interface {
	Decompress(source io.Reader, target io.Writer) error
}

// RetryErr marks a download failure as transient.
var RetryErr = errors.New("retry")

func AppendRemotePath(prefix url.URL, elements ...string) url.URL {
	prefix.Path = path.Join(append([]string{prefix.Path}, elements...)...)
	prefix.RawPath = ""
	return prefix
}
