// Package output renders grids and persisted documents: JSON, xlsx
// workbooks and terminal tables.
package output

import (
	"encoding/json"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ToJSON serializes a persisted document.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// FromJSON parses a persisted document.
func FromJSON(data []byte) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
