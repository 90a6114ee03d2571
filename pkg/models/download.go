package models

import "fmt"

// DownloadFormat names an export format offered by the scrape service.
type DownloadFormat string

const (
	FormatExcel DownloadFormat = "excel"
	FormatCSV   DownloadFormat = "csv"
	FormatJSON  DownloadFormat = "json"
)

// ParseDownloadFormat validates a format string from config or flags.
func ParseDownloadFormat(s string) (DownloadFormat, error) {
	switch DownloadFormat(s) {
	case FormatExcel, FormatCSV, FormatJSON:
		return DownloadFormat(s), nil
	}
	return "", fmt.Errorf("unknown download format %q (expected excel, csv or json)", s)
}

// Ext returns the file extension for the format, dot included.
func (f DownloadFormat) Ext() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatJSON:
		return ".json"
	default:
		return ".xlsx"
	}
}
