package contact

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
)

// SkippedLine records why one import line was not turned into a contact
type SkippedLine struct {
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Line   string `json:"line,omitempty"`
	Reason string `json:"reason"`
}

// ImportResult summarizes a CSV import
type ImportResult struct {
	Created         int               `json:"created"`
	Skipped         int               `json:"skipped"`
	CreatedContacts []*entity.Contact `json:"createdContacts"`
	SkippedLines    []SkippedLine     `json:"skippedContacts"`
}

// ImportCSV parses "name,phone" lines and creates the valid ones.
// Malformed lines and duplicate phones are skipped with a reason, never
// aborting the rest of the import.
func (s *Service) ImportCSV(ctx context.Context, clientID uint64, data string) (*ImportResult, error) {
	if clientID == 0 {
		return nil, errs.ErrClientNotFound
	}
	if strings.TrimSpace(data) == "" {
		return nil, errs.ErrValidation
	}

	result := &ImportResult{
		CreatedContacts: make([]*entity.Contact, 0),
		SkippedLines:    make([]SkippedLine, 0),
	}

	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.SkippedLines = append(result.SkippedLines, SkippedLine{
				Line:   err.Error(),
				Reason: "invalid CSV line",
			})
			continue
		}

		// Tolerate an optional "Name,Phone" header row
		if first {
			first = false
			if len(record) >= 2 &&
				strings.EqualFold(strings.TrimSpace(record[0]), "name") &&
				strings.EqualFold(strings.TrimSpace(record[1]), "phone") {
				continue
			}
		}

		if len(record) < 2 {
			result.SkippedLines = append(result.SkippedLines, SkippedLine{
				Line:   strings.Join(record, ","),
				Reason: "invalid format - name and phone required",
			})
			continue
		}

		name := strings.TrimSpace(record[0])
		phone := strings.TrimSpace(record[1])
		if name == "" || phone == "" {
			result.SkippedLines = append(result.SkippedLines, SkippedLine{
				Name:   name,
				Phone:  phone,
				Reason: "invalid format - name and phone required",
			})
			continue
		}

		contact, err := s.Create(ctx, clientID, name, phone)
		if err != nil {
			result.SkippedLines = append(result.SkippedLines, SkippedLine{
				Name:   name,
				Phone:  phone,
				Reason: skipReason(err),
			})
			continue
		}
		result.CreatedContacts = append(result.CreatedContacts, contact)
	}

	result.Created = len(result.CreatedContacts)
	result.Skipped = len(result.SkippedLines)

	s.logger.Info("Contact import completed", map[string]any{
		"client_id": clientID,
		"created":   result.Created,
		"skipped":   result.Skipped,
	})
	return result, nil
}

func skipReason(err error) string {
	switch {
	case errs.IsDuplicateError(err):
		return "phone number already exists"
	case errs.IsValidationError(err):
		return "invalid name or phone"
	default:
		return err.Error()
	}
}

// ExportCSV writes all of the client's contacts as "Name,Phone" CSV
func (s *Service) ExportCSV(ctx context.Context, clientID uint64, w io.Writer) error {
	contacts, err := s.List(ctx, clientID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Name", "Phone"}); err != nil {
		return err
	}
	for _, c := range contacts {
		if err := writer.Write([]string{c.Name, c.Phone}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
