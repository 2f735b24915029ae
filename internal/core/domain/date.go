package domain

import (
	"regexp"
	"strings"
	"time"
)

// dateLayout is the calendar rendering used throughout the archive.
const dateLayout = "2006-01-02"

// datePattern pairs a recogniser for one filename date encoding with a
// normaliser that rewrites the matched text into dateLayout form.
type datePattern struct {
	re        *regexp.Regexp
	group     int
	normalise func(string) string
}

// datePatterns are tried in priority order; the first pattern whose match
// is a real calendar date wins. The canonical scheme's own marker (a date
// immediately followed by the "--" separator) is always preferred, then
// the general encodings with "-", "_" and no separator at all. Keeping
// the separator variants ahead of the bare-digit form stops a ScanSnap
// style "2010_05_12_15_17" from swallowing the hour/minute suffix.
var datePatterns = []datePattern{
	{re: regexp.MustCompile(`(\d{4}-\d{2}-\d{2})--`), group: 1, normalise: nil},
	{re: regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)},
	{re: regexp.MustCompile(`\d{4}_\d{2}_\d{2}`), normalise: underscoresToHyphens},
	{re: regexp.MustCompile(`\d{8}`), normalise: hyphenateCompact},
}

func underscoresToHyphens(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

func hyphenateCompact(s string) string {
	return s[:4] + "-" + s[4:6] + "-" + s[6:]
}

// ExtractDate scans text for an embedded calendar date and returns the
// date together with the exact substring it was read from. A match that
// is not a valid calendar date (month 13, day 32, ...) fails that pattern
// and falls through to the next one. The scan is pure; ok is false when
// no pattern produced a valid date.
func ExtractDate(text string) (date time.Time, consumed string, ok bool) {
	for _, pattern := range datePatterns {
		var candidate string
		if pattern.group > 0 {
			match := pattern.re.FindStringSubmatch(text)
			if match == nil {
				continue
			}
			candidate = match[pattern.group]
		} else {
			candidate = pattern.re.FindString(text)
			if candidate == "" {
				continue
			}
		}

		normalised := candidate
		if pattern.normalise != nil {
			normalised = pattern.normalise(candidate)
		}
		parsed, err := time.Parse(dateLayout, normalised)
		if err != nil {
			continue
		}
		return parsed, candidate, true
	}
	return time.Time{}, "", false
}
