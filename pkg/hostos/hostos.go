// Package hostos produces a best-effort, human readable description of the
// operating system the tool runs on.
//
// Detection is an ordered chain of probes. The first probe returning a
// non-empty description wins; failures (including panics) are logged at debug
// level and the chain moves on. Detect never fails: when every probe gives up
// it returns Unknown.
package hostos

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

const (
	// Unknown is returned when no probe succeeds.
	Unknown = "Unknown OS"
	// DefaultOSReleasePath is the standard location of the os-release descriptor.
	DefaultOSReleasePath = "/etc/os-release"

	// unknownPlatform is the placeholder some systems report instead of a real
	// platform string.
	unknownPlatform = "Linux-unknown"
)

var (
	// ErrNoDescription is returned by a probe that ran but found nothing usable.
	ErrNoDescription = errors.New("no os description")
)

// Probe is one fallible source of an OS description.
type Probe struct {
	Name string
	Run  func() (string, error)
}

// Detector runs probes in order.
type Detector struct {
	probes []Probe
	logger *slog.Logger
}

// Option defines a functional option for configuring a Detector.
type Option func(*Detector)

// WithProbes replaces the default probe chain.
func WithProbes(probes ...Probe) Option {
	return func(d *Detector) {
		d.probes = probes
	}
}

// WithLogger sets the logger used to report failed probes.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

// New creates a Detector with the default chain: platform string,
// os-release file, raw uname fields.
func New(opts ...Option) *Detector {
	d := &Detector{
		probes: DefaultProbes(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// DefaultProbes returns the standard probe chain.
func DefaultProbes() []Probe {
	return []Probe{
		PlatformProbe(),
		OSReleaseProbe(DefaultOSReleasePath),
		UnameProbe(),
	}
}

// Detect is shorthand for New().Detect().
func Detect() string {
	return New().Detect()
}

// Detect returns the first description produced by the probe chain, or Unknown.
func (d *Detector) Detect() string {
	for _, p := range d.probes {
		desc, err := d.try(p)
		if err != nil {
			d.logger.Debug("host os probe failed", "probe", p.Name, "error", err)
			continue
		}
		d.logger.Debug("host os detected", "probe", p.Name, "os", desc)
		return desc
	}
	return Unknown
}

func (d *Detector) try(p Probe) (desc string, err error) {
	defer func() {
		if r := recover(); r != nil {
			desc, err = "", fmt.Errorf("probe panicked: %v", r)
		}
	}()

	if p.Run == nil {
		return "", ErrNoDescription
	}
	desc, err = p.Run()
	if err != nil {
		return "", err
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "", ErrNoDescription
	}
	return desc, nil
}

// uname is swapped in tests.
var uname = readUname

// unameInfo carries the identification fields of the running kernel.
type unameInfo struct {
	Sysname string
	Release string
	Version string
	Machine string
}

// PlatformProbe reports "<sysname>-<release>-<machine>", rejecting the
// generic "Linux-unknown" placeholder.
func PlatformProbe() Probe {
	return Probe{
		Name: "platform",
		Run: func() (string, error) {
			u, err := uname()
			if err != nil {
				return "", err
			}
			desc := joinNonEmpty("-", u.Sysname, u.Release, u.Machine)
			if desc == unknownPlatform {
				return "", fmt.Errorf("%w: %s", ErrNoDescription, desc)
			}
			return desc, nil
		},
	}
}

// UnameProbe reports the raw "<sysname> <version> <machine>" fields.
func UnameProbe() Probe {
	return Probe{
		Name: "uname",
		Run: func() (string, error) {
			u, err := uname()
			if err != nil {
				return "", err
			}
			return joinNonEmpty(" ", u.Sysname, u.Version, u.Machine), nil
		},
	}
}

// OSReleaseProbe reads an os-release file at path.
func OSReleaseProbe(path string) Probe {
	return Probe{
		Name: "os-release",
		Run: func() (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			return ParseOSRelease(string(data))
		},
	}
}

// ParseOSRelease extracts PRETTY_NAME from os-release content, falling back
// to "NAME VERSION" when PRETTY_NAME is missing.
func ParseOSRelease(content string) (string, error) {
	if pretty, ok := osReleaseValue(content, "PRETTY_NAME"); ok {
		return pretty, nil
	}
	name, ok := osReleaseValue(content, "NAME")
	if !ok {
		return "", fmt.Errorf("%w: no PRETTY_NAME or NAME", ErrNoDescription)
	}
	version, _ := osReleaseValue(content, "VERSION")
	return strings.TrimSpace(name + " " + version), nil
}

var osReleaseLines = map[string]*regexp.Regexp{
	"PRETTY_NAME": regexp.MustCompile(`(?m)^\s*PRETTY_NAME=(.*)$`),
	"NAME":        regexp.MustCompile(`(?m)^\s*NAME=(.*)$`),
	"VERSION":     regexp.MustCompile(`(?m)^\s*VERSION=(.*)$`),
}

func osReleaseValue(content, key string) (string, bool) {
	m := osReleaseLines[key].FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
