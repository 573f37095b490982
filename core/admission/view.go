package admission

import (
	"sort"
	"strings"
)

// SortKey names a sortable dashboard column.
type SortKey string

const (
	SortByCode      SortKey = "submission_id"
	SortByCandidate SortKey = "candidate_name"
	SortByFather    SortKey = "father_name"
	SortByCourse    SortKey = "course"
)

func (k SortKey) valid() bool {
	switch k {
	case SortByCode, SortByCandidate, SortByFather, SortByCourse:
		return true
	}
	return false
}

// ListParams captures the dashboard's view state: one course filter, one
// search phrase, one sort column and a page cursor, applied in that order.
type ListParams struct {
	Search     string  `json:"search" query:"search"`
	Course     string  `json:"course" query:"course"`
	SortBy     SortKey `json:"sort" query:"sort"`
	Descending bool    `json:"desc" query:"desc"`
	Page       int     `json:"page" query:"page"`
	PageSize   int     `json:"page_size" query:"-"`
}

// Clean falls back to the defaults for anything unset or out of range.
func (p *ListParams) Clean(pageSize int) {
	p.Search = strings.TrimSpace(p.Search)
	p.Course = strings.TrimSpace(p.Course)
	if !p.SortBy.valid() {
		p.SortBy = SortByCode
		p.Descending = false
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = pageSize
	}
}

// ListPage is one dashboard page plus the numbers the pager needs.
type ListPage struct {
	Items     []Submission `json:"items"`
	Total     int          `json:"total"`
	Page      int          `json:"page"`
	PageCount int          `json:"page_count"`
	PageSize  int          `json:"page_size"`
}

func sortValue(sub Submission, key SortKey) string {
	switch key {
	case SortByCandidate:
		return sub.CandidateName
	case SortByFather:
		return sub.FatherName
	case SortByCourse:
		return sub.Course
	default:
		return sub.Code
	}
}

func matchesSearch(sub Submission, phrase string) bool {
	return strings.Contains(strings.ToLower(sub.Code), phrase) ||
		strings.Contains(strings.ToLower(sub.CandidateName), phrase) ||
		strings.Contains(strings.ToLower(sub.FatherName), phrase)
}

// ApplyListView filters, searches, sorts and pages the given records. The
// input order is kept for equal sort keys, so ties stay in recency order.
// A page past the end clamps to the last page instead of coming back empty.
func ApplyListView(subs []Submission, p ListParams) ListPage {
	filtered := make([]Submission, 0, len(subs))
	phrase := strings.ToLower(p.Search)
	for _, sub := range subs {
		if p.Course != "" && sub.Course != p.Course {
			continue
		}
		if phrase != "" && !matchesSearch(sub, phrase) {
			continue
		}
		filtered = append(filtered, sub)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		vi, vj := sortValue(filtered[i], p.SortBy), sortValue(filtered[j], p.SortBy)
		if p.Descending {
			return vi > vj
		}
		return vi < vj
	})

	total := len(filtered)
	pageCount := (total + p.PageSize - 1) / p.PageSize
	if pageCount < 1 {
		pageCount = 1
	}
	page := p.Page
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * p.PageSize
	end := start + p.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return ListPage{
		Items:     filtered[start:end],
		Total:     total,
		Page:      page,
		PageCount: pageCount,
		PageSize:  p.PageSize,
	}
}
