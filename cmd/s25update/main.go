package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/smarty/s25update/core"
	"github.com/smarty/s25update/shell"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	loader := core.NewConfigLoader(shell.NewEnvironment(), shell.NewDiskFileSystem(""), os.Executable, os.Stderr)
	config, err := loader.LoadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Println("Update failed:", err)
		os.Exit(1)
	}
	os.Exit(NewUpdateApp(config, os.Stdin, os.Stdout).Run())
}
