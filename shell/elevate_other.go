//go:build !windows

package shell

import "github.com/smarty/s25update/contracts"

func relaunchElevated(string, []string) error {
	return contracts.ErrElevationUnsupported
}
