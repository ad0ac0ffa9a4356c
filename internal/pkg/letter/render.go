// Package letter renders the international-admissions offer letter:
// literal placeholder substitution into a fixed HTML layout followed
// by PDF production through headless Chrome.
package letter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yraj/offerdesk/internal/pkg/studentid"
)

// Render substitutes the field values into the template and fills in
// the computed date and academic-year tokens. Every occurrence of a
// placeholder is replaced, not just the first. The substitution is
// literal text replacement: the template is a fixed trusted document,
// and the html/template escaping rules would mangle its markup.
//
// Rendering an already fully substituted document again with the same
// fields leaves it unchanged.
func Render(template string, fields map[string]string, now time.Time) (string, error) {
	if err := validateFields(fields); err != nil {
		return "", err
	}

	out := template
	for name, value := range fields {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}

	out = strings.ReplaceAll(out, dateToken, FormatIssueDate(now))
	out = strings.ReplaceAll(out, "{"+academicYearField+"}", studentid.AcademicYear(now))

	return out, nil
}

// FormatIssueDate renders the letter's issue date: day of month with a
// superscripted ordinal suffix, full month name and year, e.g.
// "3<sup>rd</sup> October, 2024".
func FormatIssueDate(now time.Time) string {
	day := now.Day()
	return fmt.Sprintf("%d<sup>%s</sup> %s, %d", day, OrdinalSuffix(day), now.Month().String(), now.Year())
}

// OrdinalSuffix returns the English ordinal suffix for a day of month.
// The teens 11-13 take "th"; otherwise the suffix follows the last
// digit.
func OrdinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
