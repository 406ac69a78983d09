package core

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/smarty/s25update/contracts"
)

const (
	DefaultHost     = "https://nightly.siedler25.org/s25client/"
	HostEnvironment = "S25UPDATE_HOST"
	defaultMaxRetry = 3
)

type ConfigLoader struct {
	environment contracts.Environment
	fileSystem  contracts.FileChecker
	executable  func() (string, error)
	stderr      io.Writer
	goos        string
	goarch      string
}

func NewConfigLoader(
	environment contracts.Environment,
	fileSystem contracts.FileChecker,
	executable func() (string, error),
	stderr io.Writer,
) *ConfigLoader {
	return &ConfigLoader{
		environment: environment,
		fileSystem:  fileSystem,
		executable:  executable,
		stderr:      stderr,
		goos:        runtime.GOOS,
		goarch:      runtime.GOARCH,
	}
}

func (this *ConfigLoader) LoadConfig(args []string) (config contracts.Config, err error) {
	config.Executable, err = this.executable()
	if err != nil {
		return contracts.Config{}, fmt.Errorf("resolving executable path: %w", err)
	}
	config.Args = args

	host, stable, err := this.parseCLI(args, &config)
	if err != nil {
		return contracts.Config{}, err
	}
	config.Nightly = !stable

	address, err := url.Parse(host)
	if err != nil {
		return contracts.Config{}, fmt.Errorf("invalid host %q: %w", host, err)
	}
	config.Host = *address

	if config.InstallDir == "" {
		config.InstallDir = this.detectInstallDir(config.Executable)
	}

	err = this.validate(config)
	if err != nil {
		return contracts.Config{}, err
	}
	return config, nil
}

func (this *ConfigLoader) parseCLI(args []string, config *contracts.Config) (host string, stable bool, err error) {
	flags := pflag.NewFlagSet("s25update", pflag.ContinueOnError)
	flags.SetOutput(this.stderr)
	flags.BoolVarP(&config.Verbose,
		"verbose", "v",
		false,
		"Print diagnostic information while updating.",
	)
	flags.StringVarP(&config.InstallDir,
		"dir", "d",
		"",
		"Installation directory to update (default: derived from the location of this executable).",
	)
	flags.BoolVarP(&stable,
		"stable", "s",
		false,
		"Update from the stable channel instead of nightly.",
	)
	flags.IntVar(&config.MaxRetry,
		"max-retry",
		defaultMaxRetry,
		"How many times to retry a download after a transient failure.",
	)
	flags.StringVar(&host,
		"host",
		this.defaultHost(),
		"Update server address (also "+HostEnvironment+").",
	)
	flags.StringVar(&config.Target,
		"target",
		TargetName(this.goos),
		"Platform name used on the update server.",
	)
	flags.StringVar(&config.Arch,
		"arch",
		ArchName(this.goarch),
		"Architecture name used on the update server.",
	)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(this.stderr, "Usage of s25update:")
		flags.PrintDefaults()
		_, _ = fmt.Fprintln(this.stderr, `
exit code 0: success (also when nothing changed or the update was cancelled)
exit code 1: update failed (see stderr for details)`)
	}
	err = flags.Parse(args)
	return host, stable, err
}

func (this *ConfigLoader) defaultHost() string {
	host, found := this.environment.LookupEnv(HostEnvironment)
	host = strings.TrimSpace(host)
	if !found || host == "" {
		return DefaultHost
	}
	return host
}

// detectInstallDir starts at the executable's directory and moves up to the
// installation root when the executable sits in a standard install layout.
func (this *ConfigLoader) detectInstallDir(executable string) string {
	workPath := filepath.Clean(filepath.Dir(executable))
	switch this.goos {
	case "windows":
		parent := filepath.Dir(workPath)
		if contracts.Exists(this.fileSystem, filepath.Join(parent, "RTTR", "s25update.exe")) {
			return parent
		}
	case "darwin":
		bundleParent := filepath.Dir(filepath.Dir(filepath.Dir(workPath)))
		if contracts.Exists(this.fileSystem, filepath.Join(bundleParent, "s25client.app", "Contents", "MacOS", "s25update")) {
			return bundleParent
		}
	default:
		parent := filepath.Dir(workPath)
		if contracts.Exists(this.fileSystem, filepath.Join(parent, "libexec", "s25rttr", "s25update")) {
			return parent
		}
	}
	return workPath
}

func (this *ConfigLoader) validate(config contracts.Config) error {
	if config.MaxRetry < 0 {
		return maxRetryErr
	}
	if config.Host.Scheme == "" || config.Host.Host == "" {
		return incompleteHostErr
	}
	if config.Target == "" {
		return blankTargetErr
	}
	if config.Arch == "" {
		return blankArchErr
	}
	return nil
}

func TargetName(goos string) string {
	switch goos {
	case "darwin":
		return "apple"
	default:
		return goos
	}
}

func ArchName(goarch string) string {
	switch goarch {
	case "386":
		return "i386"
	case "amd64":
		return "x86_64"
	default:
		return goarch
	}
}

var (
	maxRetryErr       = errors.New("max-retry must not be negative")
	incompleteHostErr = errors.New("host must be an absolute URL")
	blankTargetErr    = errors.New("target should not be blank")
	blankArchErr      = errors.New("arch should not be blank")
)
