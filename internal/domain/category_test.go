package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	tests := []struct {
		name   string
		quotes QuoteList
		want   []string
	}{
		{name: "empty list has only the sentinel", quotes: nil, want: []string{AllCategories}},
		{
			name:   "seed list",
			quotes: SeedQuotes(),
			want:   []string{AllCategories, "Inspirational", "Motivational", "Career"},
		},
		{
			name: "first appearance order without duplicates",
			quotes: QuoteList{
				{Text: "1", Category: "B"},
				{Text: "2", Category: "A"},
				{Text: "3", Category: "B"},
				{Text: "4", Category: "b"},
			},
			want: []string{AllCategories, "B", "A", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Categories(tt.quotes)); diff != "" {
				t.Errorf("categories mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	seed := SeedQuotes()

	t.Run("sentinel returns everything in order", func(t *testing.T) {
		got := FilterByCategory(seed, AllCategories)

		if diff := cmp.Diff(seed, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("exact category match", func(t *testing.T) {
		got := FilterByCategory(seed, "Career")

		assert.Len(t, got, 1)
		assert.Equal(t, "The only way to do great work is to love what you do.", got[0].Text)
	})

	t.Run("case sensitive and untrimmed", func(t *testing.T) {
		assert.Empty(t, FilterByCategory(seed, "career"))
		assert.Empty(t, FilterByCategory(seed, " Career"))
	})

	t.Run("result does not alias the input", func(t *testing.T) {
		got := FilterByCategory(seed, AllCategories)
		got[0].Text = "mutated"

		assert.Equal(t, "Be the change you wish to see in the world.", seed[0].Text)
	})
}
