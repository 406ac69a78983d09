package contracts

import "net/url"

type Config struct {
	Verbose    bool
	Nightly    bool
	InstallDir string
	Host       url.URL
	Target     string
	Arch       string
	MaxRetry   int
	Executable string
	Args       []string
}

func (this Config) Channel() string {
	if this.Nightly {
		return "nightly"
	}
	return "stable"
}

// Result summarizes one update run.
type Result struct {
	Cancelled    bool
	Changed      bool
	Updated      []string
	LinksApplied int
	LinkFailures int
}
