package utils

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Record is one row of a fetched resource list, keyed by field name.
// Management screen listings (coupons, sizes, reviews, sliders, social
// media) are projected into records so the same filter, sort and page
// pipeline serves every resource.
type Record = map[string]interface{}

// Predicate narrows a record list. A predicate with an empty or
// unparseable value reports inactive and is skipped. Active predicates
// are ANDed together; there is no OR.
type Predicate interface {
	Active() bool
	Match(r Record) bool
}

// TextContains matches records where any stringified field value
// contains the query, case-insensitively.
type TextContains struct {
	Query string
}

func (p TextContains) Active() bool {
	return strings.TrimSpace(p.Query) != ""
}

func (p TextContains) Match(r Record) bool {
	q := strings.ToLower(strings.TrimSpace(p.Query))
	for _, v := range r {
		if v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(Stringify(v)), q) {
			return true
		}
	}
	return false
}

// EqualsEnum matches records whose named field stringifies to exactly
// the given value (status filters and the like).
type EqualsEnum struct {
	Field string
	Value string
}

func (p EqualsEnum) Active() bool {
	return p.Value != ""
}

func (p EqualsEnum) Match(r Record) bool {
	v, ok := r[p.Field]
	if !ok || v == nil {
		return false
	}
	return Stringify(v) == p.Value
}

// NumericRange matches records whose named field falls inside an
// inclusive "min-max" range.
type NumericRange struct {
	Field string
	Range string
}

func (p NumericRange) Active() bool {
	_, _, ok := parseRange(p.Range)
	return ok
}

func (p NumericRange) Match(r Record) bool {
	min, max, ok := parseRange(p.Range)
	if !ok {
		return true
	}
	v, ok := toFloat(r[p.Field])
	if !ok {
		return false
	}
	return v >= min && v <= max
}

// RelativeDateWindow matches records whose named timestamp field is
// within the last N days. Days comes straight off the query string; a
// missing or unparseable value deactivates the predicate.
type RelativeDateWindow struct {
	Field string
	Days  string
}

func (p RelativeDateWindow) Active() bool {
	days, err := strconv.Atoi(strings.TrimSpace(p.Days))
	return err == nil && days > 0
}

func (p RelativeDateWindow) Match(r Record) bool {
	days, err := strconv.Atoi(strings.TrimSpace(p.Days))
	if err != nil || days <= 0 {
		return true
	}
	t, ok := toTime(r[p.Field])
	if !ok {
		return false
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	return !t.Before(cutoff)
}

// ApplyFilters returns the records matching every active predicate.
// Inactive predicates are not applied.
func ApplyFilters(list []Record, preds ...Predicate) []Record {
	active := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p.Active() {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return list
	}
	out := make([]Record, 0, len(list))
	for _, r := range list {
		keep := true
		for _, p := range active {
			if !p.Match(r) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// timestampFields is the fallback chain used to resolve a record's
// best-effort timestamp for recency sorting.
var timestampFields = []string{"createdAt", "created_at", "updatedAt", "updated_at"}

// RecordTime resolves a record's timestamp through the fallback chain,
// returning the epoch zero time when no field is present or parseable.
func RecordTime(r Record) time.Time {
	for _, f := range timestampFields {
		if v, ok := r[f]; ok {
			if t, ok := toTime(v); ok {
				return t
			}
		}
	}
	return time.Time{}
}

// SortByNewest stable-sorts the list most-recent-first in place and
// returns it. Records without a resolvable timestamp sort last, in
// their original relative order.
func SortByNewest(list []Record) []Record {
	sort.SliceStable(list, func(i, j int) bool {
		return RecordTime(list[i]).After(RecordTime(list[j]))
	})
	return list
}

// PageSizeOptions is the fixed set of allowed page sizes.
var PageSizeOptions = []int{5, 10, 25, 50}

// NormalizePageSize clamps a requested page size to the allowed set,
// defaulting to 10.
func NormalizePageSize(size int) int {
	for _, s := range PageSizeOptions {
		if size == s {
			return size
		}
	}
	return 10
}

// PageSlice returns elements [page*size, page*size+size) of the list
// for a 0-based page index. Out-of-range pages return an empty slice.
func PageSlice(list []Record, page, size int) []Record {
	if page < 0 || size < 1 {
		return []Record{}
	}
	start := page * size
	if start >= len(list) {
		return []Record{}
	}
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// PageCount returns ceil(n/size)
func PageCount(n, size int) int {
	if size < 1 {
		return 0
	}
	return int(math.Ceil(float64(n) / float64(size)))
}

// Stringify renders a field value the way the free-text filter sees it.
// Integral floats (JSON numbers) render without a decimal point and
// timestamps render as RFC3339.
func Stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(time.RFC3339)
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return Stringify(float64(t))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func parseRange(s string) (float64, float64, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	if min > max {
		min, max = max, min
	}
	return min, max, true
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
