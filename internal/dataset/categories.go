package dataset

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// CategoryColumn is the header name, compared case-insensitively, that marks
// the category column.
const CategoryColumn = "category"

// ColumnIndex returns the position of the first header field equal to name
// ignoring case, or -1.
func (d Dataset) ColumnIndex(name string) int {
	if len(d) == 0 {
		return -1
	}
	for i, field := range d[0] {
		if strings.EqualFold(field, name) {
			return i
		}
	}
	return -1
}

// Categories returns the distinct values of the category column, sorted.
// Rows too short to hold a category are skipped. A dataset without a
// category header yields an empty list.
func Categories(d Dataset) []string {
	idx := d.ColumnIndex(CategoryColumn)
	if idx < 0 {
		if len(d) > 0 {
			log.Warn("no category column in header", "header", d[0])
		}
		return []string{}
	}

	seen := make(map[string]struct{})
	found := []string{}
	skipped := 0
	for _, row := range d.Entries() {
		if idx >= len(row) {
			skipped++
			continue
		}
		v := row[idx]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		found = append(found, v)
	}
	if skipped > 0 {
		log.Debug("skipped short rows while collecting categories", "rows", skipped)
	}

	sort.Strings(found)
	return found
}
