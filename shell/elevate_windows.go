//go:build windows

package shell

import (
	"errors"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/smarty/s25update/contracts"
)

// relaunchElevated asks UAC to run executable again as administrator.
// It returns once the elevated process has been started.
func relaunchElevated(executable string, args []string) error {
	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(executable)
	if err != nil {
		return err
	}
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, syscall.EscapeArg(arg))
	}
	parameters, err := windows.UTF16PtrFromString(strings.Join(quoted, " "))
	if err != nil {
		return err
	}

	err = windows.ShellExecute(0, verb, file, parameters, nil, windows.SW_NORMAL)
	if errors.Is(err, windows.ERROR_CANCELLED) {
		return contracts.ErrElevationRefused
	}
	return err
}
