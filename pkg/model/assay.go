// Assay: modalities, their top-level regions and the reads

package model

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Assay owns one top-level region per modality and a flat list of reads.
// LibrarySpec is positionally parallel to Modalities and
// LibrarySpec[i].RegionID must equal Modalities[i]. That rule is checked on
// lookup, not on mutation.
type Assay struct {
	SeqspecVersion *string  `json:"seqspec_version"`
	AssayID        string   `json:"assay_id"`
	Name           string   `json:"name"`
	DOI            string   `json:"doi"`
	Date           string   `json:"date"`
	Description    string   `json:"description"`
	Modalities     []string `json:"modalities"`
	LibStruct      string   `json:"lib_struct"`

	SequenceProtocol []SeqProtocol `json:"sequence_protocol"`
	SequenceKit      []SeqKit      `json:"sequence_kit"`
	LibraryProtocol  []LibProtocol `json:"library_protocol"`
	LibraryKit       []LibKit      `json:"library_kit"`

	SequenceSpec []*Read   `json:"sequence_spec"`
	LibrarySpec  []*Region `json:"library_spec"`
}

// UnmarshalJSON accepts the protocol and kit fields either as lists of
// objects or as bare strings naming a protocol/kit for every modality.
func (a *Assay) UnmarshalJSON(data []byte) error {
	type plain Assay
	aux := struct {
		*plain
		SequenceProtocol json.RawMessage `json:"sequence_protocol"`
		SequenceKit      json.RawMessage `json:"sequence_kit"`
		LibraryProtocol  json.RawMessage `json:"library_protocol"`
		LibraryKit       json.RawMessage `json:"library_kit"`
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if err := noNullEntries("library_spec", a.LibrarySpec); err != nil {
		return err
	}
	if err := noNullEntries("sequence_spec", a.SequenceSpec); err != nil {
		return err
	}

	var err error
	if a.SequenceProtocol, err = coerceList(aux.SequenceProtocol, a.Modalities, seqProtocolFromName); err != nil {
		return fmt.Errorf("sequence_protocol: %w", err)
	}
	if a.SequenceKit, err = coerceList(aux.SequenceKit, a.Modalities, seqKitFromName); err != nil {
		return fmt.Errorf("sequence_kit: %w", err)
	}
	if a.LibraryProtocol, err = coerceList(aux.LibraryProtocol, a.Modalities, libProtocolFromName); err != nil {
		return fmt.Errorf("library_protocol: %w", err)
	}
	if a.LibraryKit, err = coerceList(aux.LibraryKit, a.Modalities, libKitFromName); err != nil {
		return fmt.Errorf("library_kit: %w", err)
	}
	return nil
}

func (a *Assay) ListModalities() []string {
	return slices.Clone(a.Modalities)
}

// GetLibrarySpec returns the live top-level region of a modality.
func (a *Assay) GetLibrarySpec(modality string) (*Region, error) {
	idx := slices.Index(a.Modalities, modality)
	if idx < 0 || idx >= len(a.LibrarySpec) {
		return nil, fmt.Errorf("%w: '%s'", ErrModalityNotFound, modality)
	}

	region := a.LibrarySpec[idx]
	if region == nil || region.RegionID != modality {
		regionID := ""
		if region != nil {
			regionID = region.RegionID
		}
		return nil, &ConsistencyError{Modality: modality, RegionID: regionID}
	}
	return region, nil
}

// GetSequenceSpec returns the reads tagged with modality, in list order.
func (a *Assay) GetSequenceSpec(modality string) []*Read {
	reads := make([]*Read, 0)
	for _, rd := range a.SequenceSpec {
		if rd.Modality == modality {
			reads = append(reads, rd)
		}
	}
	return reads
}

func (a *Assay) GetRead(readID string) (*Read, error) {
	for _, rd := range a.SequenceSpec {
		if rd.ReadID == readID {
			return rd, nil
		}
	}
	return nil, fmt.Errorf("%w: read_id '%s'", ErrReadNotFound, readID)
}

// InsertRegions splices regions into the children of modality's top-level
// region, right after the child named after, or at the front when after is
// empty. An unknown after id is an error and nothing is inserted. The
// top-level region is resynchronized afterwards.
func (a *Assay) InsertRegions(regions []*Region, modality string, after string) error {
	target, err := a.GetLibrarySpec(modality)
	if err != nil {
		return err
	}

	insertIdx := 0
	if after != "" {
		pos := slices.IndexFunc(target.Regions, func(r *Region) bool { return r.RegionID == after })
		if pos < 0 {
			return fmt.Errorf("%w: no region with id '%s' under modality '%s'", ErrRegionNotFound, after, modality)
		}
		insertIdx = pos + 1
	}

	target.Regions = slices.Insert(target.Regions, insertIdx, regions...)
	target.Resynchronize()
	return nil
}

// InsertReads stamps modality on every read and splices them into the read
// list: after the read named after, at the end when after is given but not
// found, or at the front when after is empty.
func (a *Assay) InsertReads(reads []*Read, modality string, after string) error {
	if !slices.Contains(a.Modalities, modality) {
		return fmt.Errorf("%w: '%s'", ErrModalityNotFound, modality)
	}

	for _, rd := range reads {
		rd.Modality = modality
	}

	insertIdx := 0
	if after != "" {
		insertIdx = len(a.SequenceSpec)
		if pos := slices.IndexFunc(a.SequenceSpec, func(rd *Read) bool { return rd.ReadID == after }); pos >= 0 {
			insertIdx = pos + 1
		}
	}

	a.SequenceSpec = slices.Insert(a.SequenceSpec, insertIdx, reads...)
	return nil
}

// ResynchronizeAll refreshes every top-level region, in order.
func (a *Assay) ResynchronizeAll() {
	for _, region := range a.LibrarySpec {
		region.Resynchronize()
	}
}

// ReadsWithFile returns the reads that reference fileID.
func (a *Assay) ReadsWithFile(fileID string) []*Read {
	var reads []*Read
	for _, rd := range a.SequenceSpec {
		if found := rd.GetReadIfHasFile(fileID); found != nil {
			reads = append(reads, found)
		}
	}
	return reads
}

// ReadFiles maps read id to the files of each read of the modality.
func (a *Assay) ReadFiles(modality string) map[string][]File {
	files := make(map[string][]File)
	for _, rd := range a.GetSequenceSpec(modality) {
		files[rd.ReadID] = append(files[rd.ReadID], rd.Files...)
	}
	return files
}

// OnlistFiles lists the onlists attached anywhere in modality's region tree.
func (a *Assay) OnlistFiles(modality string) ([]Onlist, error) {
	libspec, err := a.GetLibrarySpec(modality)
	if err != nil {
		return nil, err
	}

	var onlists []Onlist
	for _, r := range libspec.FindWithOnlist() {
		onlists = append(onlists, *r.Onlist)
	}
	return onlists, nil
}

func (a *Assay) String() string {
	return fmt.Sprintf("Assay: %s  Modalities: %v", a.AssayID, a.Modalities)
}
