package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// HoursPerDay is the number of study hours in a day
	HoursPerDay = 8
	// HoursPerWeek is the number of study hours in a week
	HoursPerWeek = 40
)

var leadingInt = regexp.MustCompile(`^\s*([+-]?\d+)`)

// FormatDuration renders minutes as "0 min", "45 min", "2 hr" or "2 hr 15 min"
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0 min"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, rest)
}

// EstimateHours makes a best-effort conversion of a free-text estimate to hours.
// "hour" takes the leading integer as hours, "day" multiplies it by 8 and
// "week" by 40. Anything else, or an estimate without a leading number,
// contributes 0. Matching is case-sensitive.
func EstimateHours(estimate string) int {
	var factor int
	switch {
	case strings.Contains(estimate, "hour"):
		factor = 1
	case strings.Contains(estimate, "day"):
		factor = HoursPerDay
	case strings.Contains(estimate, "week"):
		factor = HoursPerWeek
	default:
		return 0
	}

	m := leadingInt.FindStringSubmatch(estimate)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0
	}
	return n * factor
}

// RemainingHours sums the estimates of all incomplete topics
func RemainingHours(c Catalog) int {
	total := 0
	for _, s := range c {
		for _, t := range s.Items {
			if !t.Completed {
				total += EstimateHours(t.TimeEstimate)
			}
		}
	}
	return total
}

// TotalTimeSpent sums the tracked minutes of every topic
func TotalTimeSpent(c Catalog) int {
	total := 0
	for _, s := range c {
		for _, t := range s.Items {
			total += t.ActualTimeSpent
		}
	}
	return total
}

// FormatHours renders hours as weeks, days and hours, omitting zero parts,
// e.g. 42 -> "1 week, 2 hours"
func FormatHours(hours int) string {
	if hours <= 0 {
		return "0 hours"
	}

	weeks := hours / HoursPerWeek
	days := (hours % HoursPerWeek) / HoursPerDay
	rest := hours % HoursPerDay

	var parts []string
	if weeks > 0 {
		parts = append(parts, plural(weeks, "week"))
	}
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if rest > 0 {
		parts = append(parts, plural(rest, "hour"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
