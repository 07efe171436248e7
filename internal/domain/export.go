package domain

import "time"

// ExportFileName is the file name of a progress export taken at now
func ExportFileName(now time.Time) string {
	return "roadmap-progress-" + now.Format("2006-01-02") + ".json"
}

// ReportFileName is the file name of a spreadsheet report taken at now
func ReportFileName(now time.Time) string {
	return "roadmap-progress-" + now.Format("2006-01-02") + ".xlsx"
}
