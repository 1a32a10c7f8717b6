package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsamuelsen/quotegen/internal/domain"
)

// maxImportBytes bounds an import document.
const maxImportBytes = 4 << 20

// EncodeQuotes writes quotes as an indented JSON array.
func EncodeQuotes(w io.Writer, quotes domain.QuoteList) error {
	if quotes == nil {
		quotes = domain.QuoteList{}
	}

	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding quotes: %w", err)
	}

	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	return nil
}

// DecodeQuotes parses an import document. The document must be a JSON array
// of quote records and every record must pass validation, otherwise nothing
// is returned and the error is a domain.ImportParseError.
func DecodeQuotes(r io.Reader) (domain.QuoteList, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImportBytes+1))
	if err != nil {
		return nil, domain.NewImportParseError(err)
	}

	if len(data) > maxImportBytes {
		return nil, domain.NewImportParseError(fmt.Errorf("document exceeds %d bytes", maxImportBytes))
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, domain.NewImportParseError(fmt.Errorf("document must be a JSON array"))
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domain.NewImportParseError(err)
	}

	quotes := make(domain.QuoteList, 0, len(records))

	for i, raw := range records {
		var q domain.Quote
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, domain.NewImportRecordError(i, err)
		}

		if err := q.Validate(); err != nil {
			return nil, domain.NewImportRecordError(i, err)
		}

		quotes = append(quotes, q)
	}

	return quotes, nil
}

// Export writes the full list to w.
func (s *QuoteStore) Export(w io.Writer) error {
	return EncodeQuotes(w, s.All())
}

// Import parses r and appends every record as one mutation.
// Returns the number of quotes appended.
func (s *QuoteStore) Import(ctx context.Context, r io.Reader) (int, error) {
	quotes, err := DecodeQuotes(r)
	if err != nil {
		return 0, err
	}

	if err := s.AppendAll(ctx, quotes); err != nil {
		return 0, err
	}

	return len(quotes), nil
}
