package timezone

//go:generate go run go.uber.org/mock/mockgen -source=./timezone.go -destination=./mocks/timezone_mock.go -package=mocks

import (
	"chrono/config"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // fallback database for hosts without zoneinfo

	"github.com/rs/zerolog/log"
)

const (
	// LayoutDotted is the MM.DD.YYYY HH:MM:SS request layout.
	LayoutDotted = "01.02.2006 15:04:05"
	// LayoutClock12 is the hh:mmAM/PM YYYY-MM-DD request layout.
	LayoutClock12 = "03:04PM 2006-01-02"
	// LayoutDisplay renders YYYY-MM-DD HH:MM:SS followed by abbreviation and offset.
	LayoutDisplay = "2006-01-02 15:04:05 MST-0700"

	// Fallback is substituted when a current-time lookup names no known zone.
	Fallback = "GMT"
)

var ErrUnknownTimeZone = errors.New("unknown time zone")

var defaultZoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
}

// Catalog is the set of recognised timezone identifiers.
type Catalog interface {
	Contains(name string) bool
	Resolve(name string) (*time.Location, error)
	Names() []string
}

// Clock supplies the present instant.
type Clock interface {
	Now() time.Time
}

type catalogImpl struct {
	zoneinfoDirs []string
	locations    sync.Map

	namesOnce sync.Once
	names     []string
}

func NewCatalog(cfg *config.Config) Catalog {
	dirs := defaultZoneinfoDirs
	if cfg.App.ZoneinfoDir != "" {
		dirs = []string{cfg.App.ZoneinfoDir}
	}

	return &catalogImpl{
		zoneinfoDirs: dirs,
	}
}

// Contains reports whether name is a zone identifier the catalog can resolve.
func (c *catalogImpl) Contains(name string) bool {
	_, err := c.Resolve(name)

	return err == nil
}

// Resolve returns the location for name. Loaded locations are memoised.
func (c *catalogImpl) Resolve(name string) (*time.Location, error) {
	if cached, ok := c.locations.Load(name); ok {
		return cached.(*time.Location), nil //nolint:forcetypeassert
	}

	if !isZoneName(name) {
		return nil, fmt.Errorf("%w %s", ErrUnknownTimeZone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	c.locations.Store(name, loc)

	return loc, nil
}

// Names lists every identifier found in the host zoneinfo directory, sorted.
func (c *catalogImpl) Names() []string {
	c.namesOnce.Do(func() {
		c.names = c.scan()

		log.Debug().Int("zones", len(c.names)).Msg("Timezone catalog scanned")
	})

	return slices.Clone(c.names)
}

func (c *catalogImpl) scan() []string {
	seen := map[string]struct{}{}

	for _, dir := range c.zoneinfoDirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil {
				return relErr //nolint:wrapcheck
			}

			rel = filepath.ToSlash(rel)

			if entry.IsDir() {
				if rel == "posix" || rel == "right" {
					return filepath.SkipDir
				}

				return nil
			}

			if c.Contains(rel) {
				seen[rel] = struct{}{}
			}

			return nil
		})
		if err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("Failed to scan zoneinfo directory")
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// isZoneName filters out names time.LoadLocation accepts but the IANA set
// does not contain: "", "Local" and the lower-case support files of a
// zoneinfo tree (posixrules, localtime, zone.tab).
func isZoneName(name string) bool {
	if name == "" || name == "Local" {
		return false
	}

	if strings.HasPrefix(name, "/") || strings.Contains(name, "..") || strings.Contains(name, "\\") {
		return false
	}

	first := name[0]

	return first >= 'A' && first <= 'Z'
}

type systemClock struct{}

func NewClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Parse parses a zone-less wall-clock value. Unlike time.Parse it rejects a
// fractional-second suffix the layout does not spell out.
func Parse(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	if fraction := secondsFraction(layout, value); fraction != "" {
		return time.Time{}, &time.ParseError{
			Layout:  layout,
			Value:   value,
			Message: ": extra text: " + strconv.Quote(fraction),
		}
	}

	return t, nil
}

// secondsFraction returns the ".123" or ",123" time.Parse silently accepted
// after the seconds field, if any. Both layouts end their clock with ":05".
func secondsFraction(layout, value string) string {
	if !strings.Contains(layout, ":05") || strings.Contains(layout, ":05.") || strings.Contains(layout, ":05,") {
		return ""
	}

	idx := strings.LastIndexByte(value, ':')
	if idx < 0 {
		return ""
	}

	if sep := strings.IndexAny(value[idx:], ".,"); sep >= 0 {
		return value[idx+sep:]
	}

	return ""
}

// DiffSeconds returns b minus a in whole seconds, truncated toward zero.
// Seconds and nanoseconds are subtracted separately so spans beyond the
// range of time.Duration stay exact.
func DiffSeconds(a, b time.Time) int64 {
	secs := b.Unix() - a.Unix()
	nanos := b.Nanosecond() - a.Nanosecond()

	switch {
	case secs > 0 && nanos < 0:
		secs--
	case secs < 0 && nanos > 0:
		secs++
	}

	return secs
}

// Localize attaches loc to the wall clock of t without shifting it.
func Localize(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// Format renders t in its own location using LayoutDisplay.
func Format(t time.Time) string {
	return t.Format(LayoutDisplay)
}
