package codec

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/snapshot"
)

type yamlCodec struct {
	defaultCurrency string
}

func (yamlCodec) Format() string { return FormatYAML }

func (c yamlCodec) NewEncoder() Encoder {
	return &collectingEncoder{render: renderYAML}
}

func (c yamlCodec) Decode(content []byte) (snapshot.RawData, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	// An empty document decodes to an empty ledger.
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return snapshot.RawData{}, decodeError(FormatYAML, "document", err)
	}

	return doc.raw(FormatYAML, c.defaultCurrency)
}

func renderYAML(s domain.Snapshot) ([]byte, error) {
	doc, err := newDocument(s)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
