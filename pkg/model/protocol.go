// Protocol and kit metadata. These lists have no enforced relationship to
// the modalities beyond the modality tag each record carries.

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type SeqProtocol struct {
	ProtocolID string `json:"protocol_id"`
	Name       string `json:"name"`
	Modality   string `json:"modality"`
}

type SeqKit struct {
	KitID    string  `json:"kit_id"`
	Name     *string `json:"name"`
	Modality string  `json:"modality"`
}

type LibProtocol struct {
	ProtocolID string `json:"protocol_id"`
	Name       string `json:"name"`
	Modality   string `json:"modality"`
}

type LibKit struct {
	KitID    string  `json:"kit_id"`
	Name     *string `json:"name"`
	Modality string  `json:"modality"`
}

func seqProtocolFromName(name, modality string) SeqProtocol {
	return SeqProtocol{ProtocolID: name, Name: name, Modality: modality}
}

func libProtocolFromName(name, modality string) LibProtocol {
	return LibProtocol{ProtocolID: name, Name: name, Modality: modality}
}

func seqKitFromName(name, modality string) SeqKit {
	n := name
	return SeqKit{KitID: name, Name: &n, Modality: modality}
}

func libKitFromName(name, modality string) LibKit {
	n := name
	return LibKit{KitID: name, Name: &n, Modality: modality}
}

// coerceList decodes a protocol/kit field that may be null, a bare string, or
// a list mixing strings and objects. Every bare string expands to one record
// per modality.
func coerceList[T any](raw json.RawMessage, modalities []string, fromName func(name, modality string) T) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	expand := func(name string) []T {
		out := make([]T, 0, len(modalities))
		for _, m := range modalities {
			out = append(out, fromName(name, m))
		}
		return out
	}

	switch raw[0] {
	case '"':
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, err
		}
		return expand(name), nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		out := make([]T, 0, len(items))
		for _, item := range items {
			item = bytes.TrimSpace(item)
			if len(item) > 0 && item[0] == '"' {
				var name string
				if err := json.Unmarshal(item, &name); err != nil {
					return nil, err
				}
				out = append(out, expand(name)...)
				continue
			}
			var v T
			if err := json.Unmarshal(item, &v); err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list, got %s", raw)
	}
}
