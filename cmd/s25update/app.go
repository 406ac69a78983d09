package main

import (
	"crypto/md5"
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/smarty/s25update/contracts"
	"github.com/smarty/s25update/core"
	"github.com/smarty/s25update/shell"
)

type UpdateApp struct {
	config   contracts.Config
	elevator contracts.Elevator
	stdin    io.Reader
	stdout   io.Writer
}

func NewUpdateApp(config contracts.Config, stdin io.Reader, stdout io.Writer) *UpdateApp {
	return &UpdateApp{
		config:   config,
		elevator: shell.NewElevator(),
		stdin:    stdin,
		stdout:   stdout,
	}
}

// Run returns the process exit code.
func (this *UpdateApp) Run() int {
	if this.config.Verbose {
		log.Printf("[INFO] Using directory %q", this.config.InstallDir)
	}

	writable, err := this.elevator.Writable(this.config.InstallDir)
	if err != nil {
		return this.fail(err)
	}
	if !writable {
		log.Println("[INFO] Cannot write to update directory, trying to elevate to administrator")
		err = this.elevator.Relaunch(this.config.Executable, this.config.Args)
		if err != nil {
			return this.fail(fmt.Errorf("%w: %v", contracts.ErrDirectoryNotWritable, err))
		}
		_, _ = fmt.Fprintln(this.stdout, "Update should have been run successfully")
		return 0
	}

	_, err = this.buildUpdater().Update()
	if err != nil {
		return this.fail(err)
	}
	return 0
}

func (this *UpdateApp) buildUpdater() *core.Updater {
	disk := shell.NewDiskFileSystem(this.config.InstallDir)
	client := core.NewRetryClient(shell.NewHTTPDownloader(shell.NewHTTPClient()), this.config.MaxRetry)
	verbose := this.config.Verbose

	resolver := core.NewMirrorResolver(client, core.MirrorCandidates(this.config), verbose)
	gate := core.NewSavegameGate(client, disk, shell.NewConsolePrompter(this.stdin, this.stdout), this.stdout)
	files := core.NewFileReconciler(
		client,
		shell.NewBz2Decompressor(),
		disk,
		md5.New,
		shell.NewConsoleProgress(this.stdout),
		this.stdout,
		verbose,
	)
	links := core.NewLinkReconciler(shell.NewLinkCreator(runtime.GOOS, disk, this.stdout))

	return core.NewUpdater(resolver, gate, files, links, client, this.stdout, verbose)
}

func (this *UpdateApp) fail(err error) int {
	log.Println("Update failed:", err)
	return 1
}
