package pagination

import (
	"net/url"
	"strconv"
)

// Gap marks an elided run of page numbers in a display sequence.
const Gap = -1

// Sequence returns the page numbers (and Gap markers) to display for a
// pager on page current of total pages. Totals of 7 or fewer render in
// full; larger totals keep the first page, a window around the current
// page, and the last page.
func Sequence(current, total int) []int {
	if total <= 0 {
		return []int{}
	}
	if total <= 7 {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	pages := []int{1}
	if current > 3 {
		pages = append(pages, Gap)
	}
	lo := max(2, current-1)
	hi := min(total-1, current+1)
	for i := lo; i <= hi; i++ {
		pages = append(pages, i)
	}
	if current < total-2 {
		pages = append(pages, Gap)
	}
	return append(pages, total)
}

// PageURL builds the link target for a page, preserving any extra filter
// params. Page 1 canonically has no page parameter.
func PageURL(basePath string, page int, extra url.Values) string {
	params := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	if qs := params.Encode(); qs != "" {
		return basePath + "?" + qs
	}
	return basePath
}

// Paginate clamps page to at least 1 and converts an exact row count
// into the offset and total page count for a fixed page size.
func Paginate(total int64, page, pageSize int) (offset, totalPages int) {
	if page < 1 {
		page = 1
	}
	totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	return (page - 1) * pageSize, totalPages
}
