// Package models holds the server-side persistence shapes.
package models

import (
	"encoding/json"
	"fmt"
)

// IDField is the document key carrying the opaque identifier.
const IDField = "_id"

// Document is a schemaless JSON object such as an order or a banner.
type Document map[string]any

// DecodeDocument parses a stored JSON object and stamps id into IDField.
func DecodeDocument(id string, raw []byte) (Document, error) {
	doc := Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	doc[IDField] = id
	return doc, nil
}

// WithoutID returns the JSON encoding of d minus IDField, ready for storage.
func (d Document) WithoutID() ([]byte, error) {
	clean := make(Document, len(d))
	for k, v := range d {
		if k != IDField {
			clean[k] = v
		}
	}
	return json.Marshal(clean)
}
