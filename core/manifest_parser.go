package core

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/smarty/s25update/contracts"
)

// ParseFileList reads lines of the form "<md5 hex>  <relative path>" until
// the first empty line or the end of input. Any malformed line fails the
// whole list.
func ParseFileList(raw string) (entries []contracts.FileEntry, err error) {
	for number, line := range lines(raw) {
		if line == "" {
			break
		}
		entry, err := parseFileLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d): %q", err, number+1, line)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseFileLine(line string) (contracts.FileEntry, error) {
	prefix := contracts.HashLength + len(contracts.HashSeparator)
	if len(line) <= prefix {
		return contracts.FileEntry{}, contracts.ErrMalformedFileList
	}
	if line[contracts.HashLength:prefix] != contracts.HashSeparator {
		return contracts.FileEntry{}, contracts.ErrMalformedFileList
	}
	hash := line[:contracts.HashLength]
	if _, err := hex.DecodeString(hash); err != nil {
		return contracts.FileEntry{}, contracts.ErrMalformedFileList
	}
	return contracts.FileEntry{Hash: hash, Path: line[prefix:]}, nil
}

// ParseLinkList reads lines of the form "<link path> <target name>" until the
// first empty line or the end of input. Paths may not contain spaces.
func ParseLinkList(raw string) (entries []contracts.LinkEntry, err error) {
	for number, line := range lines(raw) {
		if line == "" {
			break
		}
		fields := strings.Split(line, " ")
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("%w (line %d): %q", contracts.ErrMalformedLinkList, number+1, line)
		}
		entries = append(entries, contracts.LinkEntry{LinkPath: fields[0], TargetName: fields[1]})
	}
	return entries, nil
}

func lines(raw string) []string {
	return strings.Split(raw, "\n")
}
