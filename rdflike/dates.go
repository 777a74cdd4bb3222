package rdflike

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var dateRe = regexp.MustCompile(
	`^(?:(GREGORIAN|JULIAN|ISLAMIC):)?(?:(CE|BCE|BC|AD):)?(\d{1,4}(?:-\d{1,2}){0,2})(?::(CE|BCE|BC|AD))?(?::(\d{1,4}(?:-\d{1,2}){0,2}))?$`,
)

type singleDate struct {
	era   string
	year  int
	month int
	day   int
}

type parsedDate struct {
	start singleDate
	end   *singleDate
}

// parseDate reads the DSP date syntax
// [CALENDAR:][ERA:]YYYY[-MM[-DD]][:ERA][:YYYY[-MM[-DD]]].
func parseDate(s string) (parsedDate, bool) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return parsedDate{}, false
	}
	if m[1] == "ISLAMIC" && (m[2] != "" || m[4] != "") {
		return parsedDate{}, false
	}
	start, ok := parseSingleDate(m[3], m[2])
	if !ok {
		return parsedDate{}, false
	}
	pd := parsedDate{start: start}
	if m[5] != "" {
		end, ok := parseSingleDate(m[5], m[4])
		if !ok {
			return parsedDate{}, false
		}
		pd.end = &end
	}
	return pd, true
}

func parseSingleDate(s, era string) (singleDate, bool) {
	parts := strings.Split(s, "-")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return singleDate{}, false
		}
		nums[i] = n
	}
	d := singleDate{era: era, year: nums[0]}
	if len(nums) > 1 {
		d.month = nums[1]
	}
	if len(nums) > 2 {
		d.day = nums[2]
	}
	return d, true
}

func (d singleDate) beforeCommonEra() bool {
	return d.era == "BC" || d.era == "BCE"
}

// xsdLike pads partial dates to full YYYY-MM-DD dates so SHACL can compare them.
func (d singleDate) xsdLike() string {
	month, day := d.month, d.day
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, month, day)
}

// xsdLikeDates returns the start and end bounds of a date value. Dates
// before the common era have no comparable bounds.
func xsdLikeDates(date string) []PropertyObject {
	pd, ok := parseDate(date)
	if !ok || pd.start.beforeCommonEra() {
		return nil
	}
	dates := []PropertyObject{{Property: PropDateStart, Value: pd.start.xsdLike(), ObjectType: ObjectDate}}
	if pd.end != nil && !pd.end.beforeCommonEra() {
		dates = append(dates, PropertyObject{Property: PropDateEnd, Value: pd.end.xsdLike(), ObjectType: ObjectDate})
	}
	return dates
}
