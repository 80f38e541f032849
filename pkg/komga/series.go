package komga

import "regexp"

// Series names imported from year-prefixed folders look like "1998 Danger
// Girl"; for display the year moves behind the title as a volume marker.
var yearPrefix = regexp.MustCompile(`^(\d{4}) +(.+)$`)

// FormatSeriesName rewrites a "YYYY Title" series name to "Title Vol.YYYY".
// Names without a leading four-digit year pass through unchanged.
func FormatSeriesName(name string) string {
	m := yearPrefix.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	return m[2] + " Vol." + m[1]
}
