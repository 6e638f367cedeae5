package codec

import (
	"bytes"
	"encoding/json"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/snapshot"
)

type jsonCodec struct {
	defaultCurrency string
}

func (jsonCodec) Format() string { return FormatJSON }

func (c jsonCodec) NewEncoder() Encoder {
	return &collectingEncoder{render: renderJSON}
}

func (c jsonCodec) Decode(content []byte) (snapshot.RawData, error) {
	var doc document

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&doc); err != nil {
		return snapshot.RawData{}, decodeError(FormatJSON, "document", err)
	}

	return doc.raw(FormatJSON, c.defaultCurrency)
}

func renderJSON(s domain.Snapshot) ([]byte, error) {
	doc, err := newDocument(s)
	if err != nil {
		return nil, err
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(b, '\n'), nil
}
