package core

import (
	"errors"
	"io"
	"net/url"
	"time"

	"github.com/smartystreets/clock"
	"github.com/smartystreets/logging"

	"github.com/smarty/s25update/contracts"
)

const retryDelay = time.Second * 3

// RetryClient repeats downloads that failed with contracts.RetryErr.
// Any other failure (e.g. a missing file on the mirror) is returned at once
// so that mirror fallback stays fast.
type RetryClient struct {
	sleeper  *clock.Sleeper
	logger   *logging.Logger
	inner    contracts.Downloader
	maxRetry int
}

func NewRetryClient(inner contracts.Downloader, maxRetry int) *RetryClient {
	return &RetryClient{inner: inner, maxRetry: maxRetry}
}

func (this *RetryClient) Download(address url.URL) (body io.ReadCloser, size int64, err error) {
	for x := 0; x <= this.maxRetry; x++ {
		body, size, err = this.inner.Download(address)
		if err == nil {
			return body, size, nil
		}
		if !errors.Is(err, contracts.RetryErr) {
			return nil, 0, err
		}
		if x < this.maxRetry {
			this.logger.Printf("[WARN] download of %s failed (%s), retry imminent.", address.String(), err)
			this.sleeper.Sleep(retryDelay)
		}
	}
	return nil, 0, err
}
