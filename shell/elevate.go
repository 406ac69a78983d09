package shell

import (
	"errors"
	"os"
	"path/filepath"
)

const writeTestFile = "write.test"

type Elevator struct{}

func NewElevator() *Elevator {
	return &Elevator{}
}

// Writable creates and removes a probe file in root. Permission problems
// report false; any other failure is returned.
func (this *Elevator) Writable(root string) (bool, error) {
	probe := filepath.Join(root, writeTestFile)
	file, err := os.OpenFile(probe, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if errors.Is(err, os.ErrPermission) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	_ = file.Close()
	return true, os.Remove(probe)
}

func (this *Elevator) Relaunch(executable string, args []string) error {
	return relaunchElevated(executable, args)
}
