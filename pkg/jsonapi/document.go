package jsonapi

import (
	"encoding/json"
	"fmt"
)

// Document is a response whose primary data is a single resource
type Document struct {
	Data     Resource   `json:"data"`
	Included []Resource `json:"included,omitempty"`
	Links    Links      `json:"links,omitempty"`
	Meta     Meta       `json:"meta,omitempty"`
}

// Collection is a response whose primary data is a list of resources
type Collection struct {
	Data     []Resource `json:"data"`
	Included []Resource `json:"included,omitempty"`
	Links    Links      `json:"links,omitempty"`
	Meta     Meta       `json:"meta,omitempty"`
}

func NewDocumentFromJSON(body []byte) (*Document, error) {
	doc := &Document{}

	err := json.Unmarshal(body, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return doc, nil
}

func NewCollectionFromJSON(body []byte) (*Collection, error) {
	c := &Collection{}

	err := json.Unmarshal(body, c)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection: %w", err)
	}

	if c.Data == nil {
		c.Data = []Resource{}
	}

	return c, nil
}
