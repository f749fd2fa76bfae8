package timezone_test

import (
	"chrono/config"
	"chrono/shared/timezone"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, zoneinfoDir string) timezone.Catalog {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.ZoneinfoDir = zoneinfoDir

	return timezone.NewCatalog(cfg)
}

func TestCatalog_Contains(t *testing.T) {
	catalog := newCatalog(t, "")

	tests := []struct {
		name string
		zone string
		want bool
	}{
		{"region zone", "Europe/Moscow", true},
		{"three level zone", "America/Argentina/Buenos_Aires", true},
		{"GMT", "GMT", true},
		{"UTC", "UTC", true},
		{"EST abbreviation zone", "EST", true},
		{"empty", "", false},
		{"go local alias", "Local", false},
		{"support file", "posixrules", false},
		{"path traversal", "../../etc/passwd", false},
		{"absolute path", "/etc/localtime", false},
		{"unknown", "Not/AZone", false},
		{"lower case", "europe/moscow", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Contains(tt.zone))
		})
	}
}

func TestCatalog_Resolve(t *testing.T) {
	catalog := newCatalog(t, "")

	loc, err := catalog.Resolve("Asia/Jakarta")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())

	again, err := catalog.Resolve("Asia/Jakarta")
	require.NoError(t, err)
	assert.Same(t, loc, again)

	_, err = catalog.Resolve("Local")
	require.Error(t, err)
	assert.ErrorIs(t, err, timezone.ErrUnknownTimeZone)
	assert.Equal(t, "unknown time zone Local", err.Error())

	_, err = catalog.Resolve("Mars/Olympus_Mons")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mars/Olympus_Mons")
}

func TestCatalog_Names(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{
		"Europe/Moscow",
		"Asia/Tokyo",
		"posixrules",
		"zone.tab",
		"Bogus/Zone",
		"posix/Europe/Paris",
	} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}

	catalog := newCatalog(t, dir)

	names := catalog.Names()
	assert.Equal(t, []string{"Asia/Tokyo", "Europe/Moscow"}, names)

	names[0] = "mutated"
	assert.Equal(t, "Asia/Tokyo", catalog.Names()[0])
}

func TestCatalog_NamesMissingDir(t *testing.T) {
	catalog := newCatalog(t, filepath.Join(t.TempDir(), "missing"))

	assert.Empty(t, catalog.Names())
}

func TestParse(t *testing.T) {
	wall, err := timezone.Parse(timezone.LayoutDotted, "12.20.2021 22:21:05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.December, 20, 22, 21, 5, 0, time.UTC), wall)

	wall, err = timezone.Parse(timezone.LayoutClock12, "12:30PM 2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 2, 12, 30, 0, 0, time.UTC), wall)

	wall, err = timezone.Parse(timezone.LayoutClock12, "12:30AM 2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, 0, wall.Hour())

	_, err = timezone.Parse(timezone.LayoutDotted, "2021-12-20 22:21:05")
	assert.Error(t, err)

	_, err = timezone.Parse(timezone.LayoutDotted, "1.2.2021 22:21:05")
	assert.Error(t, err)

	_, err = timezone.Parse(timezone.LayoutClock12, "01.02.2024 12:30:00")
	assert.Error(t, err)
}

func TestParse_RejectsFractionalSeconds(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		value    string
		fraction string
	}{
		{"milliseconds", timezone.LayoutDotted, "12.20.2021 22:21:05.999", `".999"`},
		{"zero fraction", timezone.LayoutDotted, "12.20.2021 22:21:05.000", `".000"`},
		{"comma fraction", timezone.LayoutDotted, "12.20.2021 22:21:05,5", `",5"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := timezone.Parse(tt.layout, tt.value)

			require.Error(t, err)
			assert.Equal(t, `parsing time "`+tt.value+`": extra text: `+tt.fraction, err.Error())
		})
	}
}

func TestParse_Clock12IsUpperCaseOnly(t *testing.T) {
	_, err := timezone.Parse(timezone.LayoutClock12, "12:30pm 2024-01-02")
	assert.Error(t, err)
}

func TestDiffSeconds(t *testing.T) {
	base := time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int64
	}{
		{"equal", base, base, 0},
		{"one hour later", base, base.Add(time.Hour), 3600},
		{"one hour earlier", base.Add(time.Hour), base, -3600},
		{"half second later truncates to zero", base.Add(-500 * time.Millisecond), base, 0},
		{"half second earlier truncates to zero", base, base.Add(-500 * time.Millisecond), 0},
		{"one and a half seconds later", base, base.Add(1500 * time.Millisecond), 1},
		{"one and a half seconds earlier", base.Add(1500 * time.Millisecond), base, -1},
		{
			"beyond the duration range",
			time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC),
			315537897599,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.DiffSeconds(tt.a, tt.b))
		})
	}
}

func TestLocalize(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	wall := time.Date(2021, time.December, 20, 22, 21, 5, 0, time.UTC)
	zoned := timezone.Localize(wall, moscow)

	assert.Equal(t, moscow, zoned.Location())
	assert.Equal(t, 22, zoned.Hour())
	assert.Equal(t, 21, zoned.Minute())
	assert.Equal(t, wall.Unix()-3*3600, zoned.Unix())
}

func TestFormat(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	gmt, err := time.LoadLocation("GMT")
	require.NoError(t, err)

	instant := time.Date(2021, time.December, 20, 19, 21, 5, 0, time.UTC)

	assert.Equal(t, "2021-12-20 22:21:05 MSK+0300", timezone.Format(instant.In(moscow)))
	assert.Equal(t, "2021-12-20 19:21:05 GMT+0000", timezone.Format(instant.In(gmt)))
}

func TestClock(t *testing.T) {
	before := time.Now()
	now := timezone.NewClock().Now()

	assert.False(t, now.Before(before))
}
