package shell

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/smarty/s25update/contracts"
)

const UserAgent = "s25update/1.1"

func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   16 * time.Second,
				KeepAlive: 32 * time.Second,
			}).DialContext,
			MaxIdleConns:          4,
			IdleConnTimeout:       32 * time.Second,
			TLSHandshakeTimeout:   16 * time.Second,
			ResponseHeaderTimeout: 32 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

type HTTPDownloader struct {
	client *http.Client
}

func NewHTTPDownloader(client *http.Client) *HTTPDownloader {
	return &HTTPDownloader{client: client}
}

// Download fails on any status other than 200. Network failures and 5xx
// responses are marked with contracts.RetryErr.
func (this *HTTPDownloader) Download(address url.URL) (io.ReadCloser, int64, error) {
	request, err := http.NewRequest(http.MethodGet, address.String(), nil)
	if err != nil {
		return nil, 0, err
	}
	request.Header.Set("User-Agent", UserAgent)

	response, err := this.client.Do(request)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", contracts.RetryErr, err)
	}
	if response.StatusCode == http.StatusOK {
		return response.Body, response.ContentLength, nil
	}

	_, _ = io.Copy(io.Discard, response.Body)
	_ = response.Body.Close()
	if response.StatusCode >= http.StatusInternalServerError {
		return nil, 0, fmt.Errorf("%w: unexpected status code: %s", contracts.RetryErr, response.Status)
	}
	return nil, 0, fmt.Errorf("unexpected status code: %s", response.Status)
}
