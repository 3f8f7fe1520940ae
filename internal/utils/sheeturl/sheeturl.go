// Package sheeturl extracts spreadsheet document identifiers from stored URLs.
package sheeturl

import "regexp"

// Document ids appear either as the path segment after /d/ or, in older
// registrations, as a bare token pasted without the full URL.
var (
	pathPattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)
	barePattern = regexp.MustCompile(`[a-zA-Z0-9_-]{25,}`)
)

// ExtractDocumentID returns the spreadsheet document id embedded in url.
// The second return value is false when no id can be recognized.
func ExtractDocumentID(url string) (string, bool) {
	if m := pathPattern.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	if m := barePattern.FindString(url); m != "" {
		return m, true
	}
	return "", false
}
