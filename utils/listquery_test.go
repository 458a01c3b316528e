package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func couponFixtures(now time.Time) []Record {
	return []Record{
		{"id": 1.0, "code": "SAVE10", "discount": 10.0, "status": "active", "created_at": now.Add(-1 * time.Hour)},
		{"id": 2.0, "code": "WELCOME20", "discount": 20.0, "status": "active", "created_at": now.Add(-48 * time.Hour)},
		{"id": 3.0, "code": "FLASH50", "discount": 50.0, "status": "inactive", "created_at": now.Add(-240 * time.Hour)},
		{"id": 4.0, "code": "BIGSAVE", "discount": 35.0, "status": "active", "created_at": now.Add(-2 * time.Hour)},
	}
}

func TestTextContainsKeepsOnlyMatchingRecords(t *testing.T) {
	now := time.Now()
	list := couponFixtures(now)

	got := ApplyFilters(list, TextContains{Query: "save"})
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Contains(t, strings.ToLower(r["code"].(string)), "save")
	}

	got = ApplyFilters(list, TextContains{Query: "xyz"})
	assert.Empty(t, got)
}

func TestTextContainsSearchesEveryField(t *testing.T) {
	list := []Record{
		{"name": "Summer Slider", "link": "/sale"},
		{"name": "Winter", "link": "/summer-sale"},
	}

	// Membership means some stringified field contains the query, so a
	// match in any field keeps the record
	got := ApplyFilters(list, TextContains{Query: "summer"})
	assert.Len(t, got, 2)

	// A query matching only an enum-ish field still counts
	reviews := []Record{
		{"id": 1.0, "reviewer": "asha", "comment": "great fit", "status": "approved"},
		{"id": 2.0, "reviewer": "dev", "comment": "runs small", "status": "pending"},
	}
	got = ApplyFilters(reviews, TextContains{Query: "approved"})
	require.Len(t, got, 1)
	assert.Equal(t, "asha", got[0]["reviewer"])
}

func TestInactivePredicatesAreSkipped(t *testing.T) {
	now := time.Now()
	list := couponFixtures(now)

	// Empty and unparseable values deactivate the predicate rather
	// than filtering everything out
	got := ApplyFilters(list,
		TextContains{Query: "   "},
		EqualsEnum{Field: "status", Value: ""},
		NumericRange{Field: "discount", Range: "not-a-range"},
		RelativeDateWindow{Field: "created_at", Days: "abc"},
	)
	assert.Len(t, got, len(list))
}

func TestActivePredicatesAreANDed(t *testing.T) {
	now := time.Now()
	list := couponFixtures(now)

	got := ApplyFilters(list,
		TextContains{Query: "save"},
		EqualsEnum{Field: "status", Value: "active"},
		NumericRange{Field: "discount", Range: "30-60"},
	)
	require.Len(t, got, 1)
	assert.Equal(t, "BIGSAVE", got[0]["code"])
}

func TestNumericRangeInclusiveBounds(t *testing.T) {
	list := []Record{
		{"discount": 10.0},
		{"discount": 20.0},
		{"discount": 20.5},
		{"discount": 50.0},
	}

	got := ApplyFilters(list, NumericRange{Field: "discount", Range: "20-50"})
	assert.Len(t, got, 3)

	// Reversed bounds still form a valid range
	got = ApplyFilters(list, NumericRange{Field: "discount", Range: "50-20"})
	assert.Len(t, got, 3)
}

func TestRelativeDateWindow(t *testing.T) {
	now := time.Now()
	list := []Record{
		{"code": "RECENT", "created_at": now.Add(-24 * time.Hour)},
		{"code": "OLD", "created_at": now.AddDate(0, 0, -30)},
		{"code": "NOSTAMP"},
	}

	got := ApplyFilters(list, RelativeDateWindow{Field: "created_at", Days: "7"})
	require.Len(t, got, 1)
	assert.Equal(t, "RECENT", got[0]["code"])
}

func TestSortByNewestOrdersDescending(t *testing.T) {
	now := time.Now()
	list := []Record{
		{"code": "OLD", "created_at": now.Add(-48 * time.Hour)},
		{"code": "NEW", "created_at": now},
		{"code": "MID", "created_at": now.Add(-24 * time.Hour)},
	}

	SortByNewest(list)
	assert.Equal(t, "NEW", list[0]["code"])
	assert.Equal(t, "MID", list[1]["code"])
	assert.Equal(t, "OLD", list[2]["code"])
}

func TestSortByNewestIsIdempotent(t *testing.T) {
	now := time.Now()
	list := couponFixtures(now)

	SortByNewest(list)
	first := make([]interface{}, len(list))
	for i, r := range list {
		first[i] = r["id"]
	}

	SortByNewest(list)
	for i, r := range list {
		assert.Equal(t, first[i], r["id"])
	}
}

func TestSortByNewestMissingTimestampsSortLast(t *testing.T) {
	now := time.Now()
	list := []Record{
		{"code": "A"},
		{"code": "B", "created_at": now},
		{"code": "C"},
	}

	SortByNewest(list)
	assert.Equal(t, "B", list[0]["code"])
	// Records without a timestamp keep their relative order
	assert.Equal(t, "A", list[1]["code"])
	assert.Equal(t, "C", list[2]["code"])
}

func TestRecordTimeFallbackChain(t *testing.T) {
	now := time.Now()

	assert.Equal(t, now, RecordTime(Record{"createdAt": now, "updated_at": now.Add(-time.Hour)}))
	assert.Equal(t, now, RecordTime(Record{"created_at": now}))
	assert.Equal(t, now, RecordTime(Record{"updatedAt": now}))
	assert.True(t, RecordTime(Record{"name": "no stamps"}).IsZero())

	// String timestamps parse through the same chain
	parsed := RecordTime(Record{"created_at": "2025-06-01T10:00:00Z"})
	assert.Equal(t, 2025, parsed.Year())
}

func TestPageSlice(t *testing.T) {
	list := make([]Record, 12)
	for i := range list {
		list[i] = Record{"id": i}
	}

	assert.Len(t, PageSlice(list, 0, 5), 5)
	assert.Len(t, PageSlice(list, 1, 5), 5)
	assert.Len(t, PageSlice(list, 2, 5), 2)
	assert.Empty(t, PageSlice(list, 3, 5))
	assert.Empty(t, PageSlice(list, -1, 5))

	page := PageSlice(list, 1, 5)
	assert.Equal(t, 5, page[0]["id"])
	assert.Equal(t, 9, page[4]["id"])
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 3, PageCount(12, 5))
	assert.Equal(t, 1, PageCount(5, 5))
	assert.Equal(t, 0, PageCount(0, 5))
	assert.Equal(t, 0, PageCount(10, 0))
}

func TestNormalizePageSize(t *testing.T) {
	for _, s := range PageSizeOptions {
		assert.Equal(t, s, NormalizePageSize(s))
	}
	assert.Equal(t, 10, NormalizePageSize(0))
	assert.Equal(t, 10, NormalizePageSize(7))
	assert.Equal(t, 10, NormalizePageSize(100))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "10", Stringify(10.0))
	assert.Equal(t, "10.5", Stringify(10.5))
	assert.Equal(t, "hello", Stringify("hello"))
	assert.Equal(t, "", Stringify(nil))

	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01T10:00:00Z", Stringify(ts))
	assert.Equal(t, "2025-06-01T10:00:00Z", Stringify(&ts))

	var nilTime *time.Time
	assert.Equal(t, "", Stringify(nilTime))
}
