package services

import "strings"

// splitLines splits input into "\n"-delimited records. Records are kept
// as-is: a "\r" stays in its record and a final "\n" yields an empty
// last record, both of which the grammar then rejects.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}
