package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reMonthYear = regexp.MustCompile(`^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+(\d{4})$`)
	reYearMonth = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	reBareYear  = regexp.MustCompile(`^(\d{4})$`)

	monthIndex = map[string]time.Month{
		"jan": time.January, "feb": time.February, "mar": time.March,
		"apr": time.April, "may": time.May, "jun": time.June,
		"jul": time.July, "aug": time.August, "sep": time.September,
		"oct": time.October, "nov": time.November, "dec": time.December,
	}
)

// ParseDate resolves a free-form date token into a calendar point.
// Recognized forms, first match wins:
//
//	"present" / "current"  -> now
//	"Mar 2021"             -> first day of that month
//	"2021-03"              -> first day of that month
//	"2021"                 -> January 1st of that year
//
// Anything else is unparseable and reported via ok=false, never as an error.
func ParseDate(value string) (t time.Time, ok bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return time.Time{}, false
	}
	if normalized == "present" || normalized == "current" {
		return time.Now().UTC(), true
	}
	if m := reMonthYear.FindStringSubmatch(normalized); m != nil {
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, monthIndex[m[1]], 1, 0, 0, 0, 0, time.UTC), true
	}
	if m := reYearMonth.FindStringSubmatch(normalized); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
	}
	if m := reBareYear.FindStringSubmatch(normalized); m != nil {
		year, _ := strconv.Atoi(m[1])
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
