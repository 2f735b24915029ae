package domain

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFilename_Canonical tests parsing a fully canonical name
func TestParseFilename_Canonical(t *testing.T) {
	date, specification, tags := ParseFilename("2010-05-12--example-description__tag1_tag2_tag4.pdf")

	require.NotNil(t, date)
	assert.Equal(t, "2010-05-12", date.Format("2006-01-02"))
	assert.Equal(t, "example-description", specification)
	assert.Equal(t, []string{"tag1", "tag2", "tag4"}, tags)
}

// TestParseFilename_RawNames tests best-effort parsing of names that do
// not follow the canonical scheme
func TestParseFilename_RawNames(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantDate string // "" means no date
		wantSpec string
		wantTags []string
	}{
		{
			name:     "plain scan without date",
			filename: "scan1.pdf",
			wantSpec: "scan1",
		},
		{
			name:     "scansnap timestamp",
			filename: "2010_05_12_15_17.pdf",
			wantDate: "2010-05-12",
			wantSpec: "15-17",
		},
		{
			name:     "date with surrounding words",
			filename: "invoice 2019-12-31 phone.pdf",
			wantDate: "2019-12-31",
			wantSpec: "invoice  phone",
		},
		{
			name:     "underscores become hyphens",
			filename: "phone_bill_january.pdf",
			wantSpec: "phone-bill-january",
		},
		{
			name:     "tag block without canonical spec",
			filename: "phone bill__bill_phone.pdf",
			wantSpec: "phone bill",
			wantTags: []string{"bill", "phone"},
		},
		{
			name:     "tags split on last separator",
			filename: "a__b__tag1_tag2.pdf",
			wantSpec: "a",
			wantTags: []string{"tag1", "tag2"},
		},
		{
			name:     "empty tag block yields no tag information",
			filename: "2010-05-12--spec__.pdf",
			wantDate: "2010-05-12",
			wantSpec: "spec",
			wantTags: nil,
		},
		{
			name:     "tags are lower-cased",
			filename: "doc__Bill_PHONE.pdf",
			wantSpec: "doc",
			wantTags: []string{"bill", "phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, specification, tags := ParseFilename(tt.filename)

			if tt.wantDate == "" {
				assert.Nil(t, date)
			} else {
				require.NotNil(t, date)
				assert.Equal(t, tt.wantDate, date.Format("2006-01-02"))
			}
			assert.Equal(t, tt.wantSpec, specification)
			assert.Equal(t, tt.wantTags, tags)
		})
	}
}

// TestParseFilename_NeverFails tests graceful degradation on junk input
func TestParseFilename_NeverFails(t *testing.T) {
	for _, filename := range []string{"", ".pdf", "___", "--__", "....", "1"} {
		date, _, tags := ParseFilename(filename)
		assert.Nil(t, date, "filename %q", filename)
		assert.Nil(t, tags, "filename %q", filename)
	}
}

// TestBuildFilename tests canonical serialisation
func TestBuildFilename(t *testing.T) {
	date := time.Date(2010, 5, 12, 0, 0, 0, 0, time.UTC)

	filename := BuildFilename(date, "example-description", []string{"tag2", "tag1"})

	assert.Equal(t, "2010-05-12--example-description__tag1_tag2.pdf", filename)
}

// TestBuildFilename_RoundTrip tests that parsing a serialised name
// recovers the exact fields
func TestBuildFilename_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		spec string
		tags []string
	}{
		{"single tag", time.Date(2010, 5, 12, 0, 0, 0, 0, time.UTC), "example-description", []string{"tag1"}},
		{"unsorted tags", time.Date(1999, 1, 2, 0, 0, 0, 0, time.UTC), "bill", []string{"z", "aa", "m"}},
		{"digits in spec", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "form-1099", []string{"tax", "usa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, specification, tags := ParseFilename(BuildFilename(tt.date, tt.spec, tt.tags))

			require.NotNil(t, date)
			assert.True(t, tt.date.Equal(*date))
			assert.Equal(t, tt.spec, specification)

			// BuildFilename sorts, so parsing returns sorted order.
			sorted := slices.Clone(tt.tags)
			slices.Sort(sorted)
			assert.Equal(t, sorted, tags)
		})
	}
}
