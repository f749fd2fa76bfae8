// Package timezone wraps the IANA timezone database used by the service.
//
// Usage Examples:
//
//  1. Resolving and checking zone identifiers:
//     catalog := timezone.NewCatalog(cfg)
//     ok := catalog.Contains("Europe/Moscow")        // membership only
//     loc, err := catalog.Resolve("America/New_York") // *time.Location
//
//  2. Parsing a wall-clock value that already belongs to a zone:
//     wall, err := timezone.Parse(timezone.LayoutDotted, "12.20.2021 22:21:05")
//     t := timezone.Localize(wall, loc)
//
//  3. Rendering a zoned timestamp:
//     s := timezone.Format(t) // "2021-12-21 06:21:05 MSK+0300"
//
//  4. Getting the current instant:
//     now := timezone.NewClock().Now()
//
// Only standard IANA names are accepted ("UTC", "GMT", "EST", "Asia/Jakarta",
// "Europe/London"). Go's "Local" alias and the empty name are rejected.
// The host zoneinfo database is used when present; the copy embedded through
// time/tzdata is the fallback.
package timezone
