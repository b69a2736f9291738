package constants

import "strings"

// ExportFormat is a target output format for an export job.
type ExportFormat string

const (
	FormatCSV      ExportFormat = "csv"
	FormatJSON     ExportFormat = "json"
	FormatXLSX     ExportFormat = "xlsx"
	FormatXML      ExportFormat = "xml"
	FormatText     ExportFormat = "txt"
	FormatMarkdown ExportFormat = "md"
)

var allFormats = []ExportFormat{
	FormatCSV,
	FormatJSON,
	FormatXLSX,
	FormatXML,
	FormatText,
	FormatMarkdown,
}

// ExportFormats returns the allowed formats as strings.
func ExportFormats() []string {
	result := make([]string, len(allFormats))
	for i, f := range allFormats {
		result[i] = string(f)
	}
	return result
}

// IsExportFormat reports whether s names a supported format (case-insensitive).
func IsExportFormat(s string) bool {
	n := strings.ToLower(strings.TrimPrefix(s, "."))
	for _, f := range allFormats {
		if string(f) == n {
			return true
		}
	}
	return false
}
