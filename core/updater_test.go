package core

import (
	"bytes"
	"crypto/md5"
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
	"github.com/smartystreets/logging"

	"github.com/smarty/s25update/contracts"
)

func TestUpdaterFixture(t *testing.T) {
	gunit.Run(new(UpdaterFixture), t)
}

type UpdaterFixture struct {
	*gunit.Fixture

	downloader *FakeDownloader
	fileSystem *inMemoryFileSystem
	prompter   *FakePrompter
	links      *FakeLinkCreator
	stdout     *bytes.Buffer
	log        *logging.Logger
	config     contracts.Config
	base       string
}

func (this *UpdaterFixture) Setup() {
	this.downloader = NewFakeDownloader()
	this.fileSystem = newInMemoryFileSystem()
	this.prompter = &FakePrompter{}
	this.links = NewFakeLinkCreator()
	this.stdout = new(bytes.Buffer)
	this.log = logging.Capture()
	this.config = contracts.Config{
		Nightly: true,
		Host:    parseURL(DefaultHost),
		Target:  "linux",
		Arch:    "x86_64",
	}
	this.base = nightlyBase + ".2/updater"
}

func (this *UpdaterFixture) update() (contracts.Result, error) {
	resolver := NewMirrorResolver(this.downloader, MirrorCandidates(this.config), this.config.Verbose)
	resolver.logger = this.log
	gate := NewSavegameGate(this.downloader, this.fileSystem, this.prompter, this.stdout)
	gate.logger = this.log
	files := NewFileReconciler(
		this.downloader, &FakeDecompressor{}, this.fileSystem, md5.New, NewFakeProgress(), this.stdout, this.config.Verbose)
	files.logger = this.log
	links := NewLinkReconciler(this.links)
	links.logger = this.log

	updater := NewUpdater(resolver, gate, files, links, this.downloader, this.stdout, this.config.Verbose)
	updater.logger = this.log
	return updater.Update()
}

func (this *UpdaterFixture) publish(fileList string, remoteFiles map[string]string) {
	this.downloader.prepare(this.base+"/files", fileList)
	for remotePath, content := range remoteFiles {
		this.downloader.prepare(this.base+"/"+remotePath+".bz2", compress(content))
	}
}

func (this *UpdaterFixture) TestFreshInstallFromFallbackMirror() {
	this.publish(md5Hex("binary")+"  bin/app\n"+md5Hex("data")+"  share/data.txt\n", map[string]string{
		"bin/app":        "binary",
		"share/data.txt": "data",
	})
	this.downloader.prepare(this.base+"/links", "bin/rttr app\n")

	result, err := this.update()

	this.So(err, should.BeNil)
	this.So(result, should.Resemble, contracts.Result{
		Changed:      true,
		Updated:      []string{"bin/app", "share/data.txt"},
		LinksApplied: 1,
	})
	this.So(this.fileSystem.contents("bin/app"), should.Equal, "binary")
	this.So(this.fileSystem.contents("share/data.txt"), should.Equal, "data")
	this.So(this.links.created, should.Resemble, []contracts.LinkEntry{{LinkPath: "bin/rttr", TargetName: "app"}})
	this.So(this.stdout.String(), should.EndWith, "Update finished!\n")
	for _, request := range this.downloader.requests[3:] {
		this.So(request, should.StartWith, this.base+"/")
	}
}

func (this *UpdaterFixture) TestSecondRunDownloadsNothing() {
	this.publish(md5Hex("binary")+"  bin/app\n", map[string]string{"bin/app": "binary"})
	_, _ = this.update()
	this.downloader.requests = nil
	this.stdout.Reset()

	result, err := this.update()

	this.So(err, should.BeNil)
	this.So(result.Changed, should.BeFalse)
	this.So(result.Updated, should.BeEmpty)
	this.So(this.downloader.requested(this.base+"/bin/app.bz2"), should.Equal, 0)
	this.So(this.stdout.String(), should.NotContainSubstring, "Update finished!")
}

func (this *UpdaterFixture) TestNoMirrorAvailable() {
	result, err := this.update()

	this.So(errors.Is(err, contracts.ErrNoManifest), should.BeTrue)
	this.So(result.Changed, should.BeFalse)
}

func (this *UpdaterFixture) TestMalformedFileListIsFatal() {
	this.publish("not a file list\n", nil)

	_, err := this.update()

	this.So(errors.Is(err, contracts.ErrMalformedFileList), should.BeTrue)
}

func (this *UpdaterFixture) TestCancelledAtSavegamePromptChangesNothing() {
	marker := "share/s25rttr/RTTR/savegameversion"
	this.fileSystem.WriteFile(marker, "3")
	this.publish(md5Hex("binary")+"  bin/app\n"+md5Hex("4")+"  "+marker+"\n", map[string]string{
		"bin/app": "binary",
		marker:    "4",
	})
	this.downloader.prepare(this.base+"/savegameversion", "4")
	this.prompter.answer = 'y'

	result, err := this.update()

	this.So(err, should.BeNil)
	this.So(result, should.Resemble, contracts.Result{Cancelled: true})
	this.So(this.fileSystem.contents(marker), should.Equal, "3")
	this.So(this.downloader.requested(this.base+"/bin/app.bz2"), should.Equal, 0)
	this.So(this.downloader.requested(this.base+"/links"), should.Equal, 0)
}

func (this *UpdaterFixture) TestMissingLinkListIsIgnored() {
	this.publish(md5Hex("binary")+"  bin/app\n", map[string]string{"bin/app": "binary"})

	result, err := this.update()

	this.So(err, should.BeNil)
	this.So(result.Changed, should.BeTrue)
	this.So(result.LinksApplied, should.Equal, 0)
	this.So(this.log.Log.String(), should.ContainSubstring, "Was not able to get linkfile")
}

func (this *UpdaterFixture) TestMalformedLinkListIsFatalBeforeAnyFileChanges() {
	this.publish(md5Hex("binary")+"  bin/app\n", map[string]string{"bin/app": "binary"})
	this.downloader.prepare(this.base+"/links", "no-target\n")

	_, err := this.update()

	this.So(errors.Is(err, contracts.ErrMalformedLinkList), should.BeTrue)
	this.So(this.downloader.requested(this.base+"/bin/app.bz2"), should.Equal, 0)
}

func (this *UpdaterFixture) TestFileFailureStopsBeforeLinks() {
	this.publish(md5Hex("binary")+"  bin/app\n", nil)
	this.downloader.prepare(this.base+"/links", "bin/rttr app\n")

	result, err := this.update()

	this.So(errors.Is(err, contracts.ErrDownloadFailed), should.BeTrue)
	this.So(result.Changed, should.BeFalse)
	this.So(this.links.created, should.BeEmpty)
}

func (this *UpdaterFixture) TestLinkFailuresAreCounted() {
	this.publish(md5Hex("binary")+"  bin/app\n", map[string]string{"bin/app": "binary"})
	this.downloader.prepare(this.base+"/links", "bin/rttr app\nbin/broken app\n")
	this.links.failures["bin/broken"] = anError

	result, err := this.update()

	this.So(err, should.BeNil)
	this.So(result.LinksApplied, should.Equal, 1)
	this.So(result.LinkFailures, should.Equal, 1)
}

func (this *UpdaterFixture) TestVerboseDiagnostics() {
	this.config.Verbose = true
	this.publish(md5Hex("binary")+"  bin/app\n", map[string]string{"bin/app": "binary"})

	_, _ = this.update()

	logged := this.log.Log.String()
	this.So(logged, should.ContainSubstring, "[INFO] Requesting current version information from server...")
	this.So(logged, should.ContainSubstring, "[INFO] Parsing update list...")
	this.So(logged, should.ContainSubstring, "[INFO] Updating folder structure...")
	this.So(logged, should.ContainSubstring, "Trying to download update filelist from")
}

func (this *UpdaterFixture) TestQuietByDefault() {
	this.publish(md5Hex("binary")+"  bin/app\n", map[string]string{"bin/app": "binary"})
	this.downloader.prepare(this.base+"/links", "")

	_, _ = this.update()

	this.So(this.log.Log.String(), should.NotContainSubstring, "[INFO]")
}
