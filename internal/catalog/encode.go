// internal/catalog/encode.go
package catalog

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/solatis/rulebuilders/internal/types"
)

/*
 * Customer list encoding.
 *
 * Output shapes follow the catalog's wire documents:
 *   - list:   {"customer": [ {...}, ... ]}
 *   - result: {"result": {...}}
 *   - error:  {"error": {"message": "...", "code": "..."}}
 *
 * Documents are built as structpb.Struct and written either as protojson
 * (format "json") or as binary protobuf (format "proto"), so both formats
 * carry the same document.
 */

// Error payload for unknown refs.
const (
	NotFoundCode    = "NF/404"
	NotFoundMessage = "Item not found"
)

// Entry is a customer together with the labels computed for it.
type Entry struct {
	Customer types.Customer
	Labels   []string
}

// EncodeList encodes entries as a customer list document.
func EncodeList(entries []Entry, format string) ([]byte, error) {
	list := make([]any, 0, len(entries))
	for _, e := range entries {
		list = append(list, entryFields(e))
	}
	return encode(map[string]any{"customer": list}, format)
}

// EncodeResult encodes a single entry as a result document.
func EncodeResult(e Entry, format string) ([]byte, error) {
	return encode(map[string]any{"result": entryFields(e)}, format)
}

// EncodeError encodes an error document.
func EncodeError(code, message, format string) ([]byte, error) {
	return encode(map[string]any{
		"error": map[string]any{
			"message": message,
			"code":    code,
		},
	}, format)
}

// DecodeDocument parses a document produced by the encoders back into a
// structpb.Struct.
func DecodeDocument(data []byte, format string) (*structpb.Struct, error) {
	doc := &structpb.Struct{}
	var err error
	switch format {
	case types.FormatJSON:
		err = protojson.Unmarshal(data, doc)
	case types.FormatProto:
		err = proto.Unmarshal(data, doc)
	default:
		return nil, fmt.Errorf("format %q: %w", format, types.ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s document: %w", format, err)
	}
	return doc, nil
}

func entryFields(e Entry) map[string]any {
	codes := make([]any, len(e.Customer.LegalEntityCodes))
	for i, c := range e.Customer.LegalEntityCodes {
		codes[i] = c
	}
	labels := make([]any, len(e.Labels))
	for i, l := range e.Labels {
		labels[i] = l
	}
	return map[string]any{
		"id":               int(e.Customer.ID),
		"firstName":        e.Customer.FirstName,
		"lastName":         e.Customer.LastName,
		"legalEntityCodes": codes,
		"labels":           labels,
	}
}

func encode(fields map[string]any, format string) ([]byte, error) {
	doc, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}
	switch format {
	case types.FormatJSON:
		return protojson.Marshal(doc)
	case types.FormatProto:
		return proto.Marshal(doc)
	default:
		return nil, fmt.Errorf("format %q: %w", format, types.ErrUnknownFormat)
	}
}
