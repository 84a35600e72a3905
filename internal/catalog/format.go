package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a currency amount as a whole number with a
// space between thousand groups: 1234567 -> "1 234 567". Any
// fractional part is truncated, not rounded.
func FormatAmount(d decimal.Decimal) string {
	s := d.Truncate(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, " ")
	if neg {
		out = "-" + out
	}
	return out
}

// monthNames maps month numbers to Russian prepositional-case names,
// as used after "в" ("в январе").
var monthNames = map[int]string{
	1:  "январе",
	2:  "феврале",
	3:  "марте",
	4:  "апреле",
	5:  "мае",
	6:  "июне",
	7:  "июле",
	8:  "августе",
	9:  "сентябре",
	10: "октябре",
	11: "ноябре",
	12: "декабре",
}

// MonthName returns the localized month name for 1..12 and an empty
// string for anything else.
func MonthName(month int) string {
	return monthNames[month]
}
