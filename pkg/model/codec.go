// JSON encoding of the model. Decoding failures are reported as *ParseError.

package model

import (
	"encoding/json"
	"fmt"
)

func decode[T any](kind string, data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &ParseError{Kind: kind, Err: err}
	}
	return &v, nil
}

// UnmarshalJSON rejects null children. Nested regions are checked by their
// own UnmarshalJSON.
func (r *Region) UnmarshalJSON(data []byte) error {
	type plain Region
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}
	return noNullEntries("regions of region '"+r.RegionID+"'", r.Regions)
}

func noNullEntries[T any](field string, items []*T) error {
	for i, item := range items {
		if item == nil {
			return fmt.Errorf("%w in %s at index %d", ErrNullEntry, field, i)
		}
	}
	return nil
}

func RegionFromJSON(data []byte) (*Region, error) {
	return decode[Region]("region", data)
}

func ReadFromJSON(data []byte) (*Read, error) {
	return decode[Read]("read", data)
}

func AssayFromJSON(data []byte) (*Assay, error) {
	return decode[Assay]("assay", data)
}

func FileFromJSON(data []byte) (*File, error) {
	return decode[File]("file", data)
}

func OnlistFromJSON(data []byte) (*Onlist, error) {
	return decode[Onlist]("onlist", data)
}

func (r *Region) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

func (rd *Read) ToJSON() ([]byte, error) {
	return json.Marshal(rd)
}

func (a *Assay) ToJSON() ([]byte, error) {
	return json.Marshal(a)
}

func (f *File) ToJSON() ([]byte, error) {
	return json.Marshal(f)
}

func (o *Onlist) ToJSON() ([]byte, error) {
	return json.Marshal(o)
}
