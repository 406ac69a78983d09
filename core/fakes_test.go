package core

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/smarty/s25update/contracts"
)

type FakeDownloader struct {
	responses map[string]string
	errors    map[string]error
	requests  []string
}

func NewFakeDownloader() *FakeDownloader {
	return &FakeDownloader{
		responses: make(map[string]string),
		errors:    make(map[string]error),
	}
}

func (this *FakeDownloader) prepare(address, content string) {
	this.responses[address] = content
}

func (this *FakeDownloader) fail(address string, err error) {
	this.errors[address] = err
}

func (this *FakeDownloader) Download(address url.URL) (io.ReadCloser, int64, error) {
	key := address.String()
	this.requests = append(this.requests, key)
	if err, found := this.errors[key]; found {
		return nil, 0, err
	}
	content, found := this.responses[key]
	if !found {
		return nil, 0, errNotFound
	}
	return io.NopCloser(strings.NewReader(content)), int64(len(content)), nil
}

func (this *FakeDownloader) requested(address string) (count int) {
	for _, request := range this.requests {
		if request == address {
			count++
		}
	}
	return count
}

// FakeDecompressor "decompresses" by stripping a "compressed:" prefix.
type FakeDecompressor struct {
	err error
}

func (this *FakeDecompressor) Decompress(source io.Reader, target io.Writer) error {
	if this.err != nil {
		return this.err
	}
	raw, err := io.ReadAll(source)
	if err != nil {
		return err
	}
	_, err = io.WriteString(target, strings.TrimPrefix(string(raw), "compressed:"))
	return err
}

func compress(content string) string {
	return "compressed:" + content
}

type FakeProgress struct {
	reports  map[string]int64
	finished []string
}

func NewFakeProgress() *FakeProgress {
	return &FakeProgress{reports: make(map[string]int64)}
}

func (this *FakeProgress) Report(label string, done, total int64) {
	this.reports[strings.TrimSpace(label)] = done
}

func (this *FakeProgress) Finish(label string) {
	this.finished = append(this.finished, strings.TrimSpace(label))
}

type FakePrompter struct {
	answer   byte
	err      error
	question string
	prompts  int
}

func (this *FakePrompter) Prompt(question string) (byte, error) {
	this.question = question
	this.prompts++
	return this.answer, this.err
}

type FakeLinkCreator struct {
	created  []contracts.LinkEntry
	failures map[string]error
}

func NewFakeLinkCreator() *FakeLinkCreator {
	return &FakeLinkCreator{failures: make(map[string]error)}
}

func (this *FakeLinkCreator) CreateLink(linkPath, targetName string) error {
	if err := this.failures[linkPath]; err != nil {
		return err
	}
	this.created = append(this.created, contracts.LinkEntry{LinkPath: linkPath, TargetName: targetName})
	return nil
}

func md5Hex(content string) string {
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}

func parseURL(raw string) url.URL {
	parsed, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return *parsed
}

var (
	errNotFound = errors.New("unexpected status code: 404 Not Found")
	anError     = errors.New("this is an error")
)
