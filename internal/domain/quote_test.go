package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		category  string
		wantField string
		want      Quote
	}{
		{name: "valid", text: "Stay hungry.", category: "Motivational", want: Quote{Text: "Stay hungry.", Category: "Motivational"}},
		{name: "trims both fields", text: "  hi  ", category: "\tX\n", want: Quote{Text: "hi", Category: "X"}},
		{name: "empty text", text: "", category: "X", wantField: "text"},
		{name: "blank text", text: "   ", category: "X", wantField: "text"},
		{name: "empty category", text: "X", category: "", wantField: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuote(tt.text, tt.category)

			if tt.wantField != "" {
				require.Error(t, err)
				assert.True(t, IsValidation(err))

				var validation *ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Equal(t, tt.wantField, validation.Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
			assert.False(t, q.HasID())
		})
	}
}

func TestQuote_SameEntity(t *testing.T) {
	tests := []struct {
		name string
		a, b Quote
		want bool
	}{
		{"equal ids", Quote{ID: IntPtr(1)}, Quote{ID: IntPtr(1), Text: "other"}, true},
		{"different ids", Quote{ID: IntPtr(1)}, Quote{ID: IntPtr(2)}, false},
		{"left id missing", Quote{}, Quote{ID: IntPtr(1)}, false},
		{"both ids missing", Quote{Text: "A"}, Quote{Text: "A"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.SameEntity(tt.b))
		})
	}
}

func TestQuote_Equal(t *testing.T) {
	base := Quote{ID: IntPtr(1), Text: "A", Category: "X"}

	assert.True(t, base.Equal(Quote{ID: IntPtr(1), Text: "A", Category: "X"}))
	assert.False(t, base.Equal(Quote{ID: IntPtr(1), Text: "B", Category: "X"}))
	assert.False(t, base.Equal(Quote{Text: "A", Category: "X"}))
	assert.True(t, Quote{Text: "A", Category: "X"}.Equal(Quote{Text: "A", Category: "X"}))
}

func TestQuote_WithID(t *testing.T) {
	q := Quote{Text: "A", Category: "X"}
	withID := q.WithID(101)

	require.True(t, withID.HasID())
	assert.Equal(t, 101, *withID.ID)
	assert.False(t, q.HasID(), "original must stay id-less")
}

func TestQuote_Validate(t *testing.T) {
	assert.NoError(t, Quote{Text: "A", Category: "X"}.Validate())
	assert.NoError(t, Quote{ID: IntPtr(3), Text: "A", Category: "X"}.Validate())
	assert.True(t, IsValidation(Quote{Category: "X"}.Validate()))
	assert.True(t, IsValidation(Quote{Text: "A", Category: " "}.Validate()))
	assert.True(t, IsValidation(Quote{ID: IntPtr(0), Text: "A", Category: "X"}.Validate()))
}

func TestQuoteList_Clone(t *testing.T) {
	original := SeedQuotes()
	clone := original.Clone()

	clone[0].Text = "changed"

	assert.Equal(t, "Be the change you wish to see in the world.", original[0].Text)
	assert.NotNil(t, QuoteList(nil).Clone())
}

func TestSeedQuotes(t *testing.T) {
	seed := SeedQuotes()

	require.Len(t, seed, 3)

	for _, q := range seed {
		assert.NoError(t, q.Validate())
		assert.False(t, q.HasID())
	}
}
