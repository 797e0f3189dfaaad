package model

import "fmt"

type Strand string

const (
	StrandPos Strand = "pos"
	StrandNeg Strand = "neg"
)

// Read describes one sequencing read. Its bounds are independent of the
// region tree.
type Read struct {
	ReadID   string `json:"read_id"`
	Name     string `json:"name"`
	Modality string `json:"modality"`
	PrimerID string `json:"primer_id"`
	MinLen   int64  `json:"min_len"`
	MaxLen   int64  `json:"max_len"`
	Strand   Strand `json:"strand"`
	Files    []File `json:"files"`
}

// ReadUpdate carries the fields to change in Read.Update. Nil fields are
// left untouched.
type ReadUpdate struct {
	ReadID   *string `json:"read_id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Modality *string `json:"modality,omitempty"`
	PrimerID *string `json:"primer_id,omitempty"`
	MinLen   *int64  `json:"min_len,omitempty"`
	MaxLen   *int64  `json:"max_len,omitempty"`
	Strand   *Strand `json:"strand,omitempty"`
	Files    *[]File `json:"files,omitempty"`
}

func (rd *Read) Update(upd ReadUpdate) {
	if upd.ReadID != nil {
		rd.ReadID = *upd.ReadID
	}
	if upd.Name != nil {
		rd.Name = *upd.Name
	}
	if upd.Modality != nil {
		rd.Modality = *upd.Modality
	}
	if upd.PrimerID != nil {
		rd.PrimerID = *upd.PrimerID
	}
	if upd.MinLen != nil {
		rd.MinLen = *upd.MinLen
	}
	if upd.MaxLen != nil {
		rd.MaxLen = *upd.MaxLen
	}
	if upd.Strand != nil {
		rd.Strand = *upd.Strand
	}
	if upd.Files != nil {
		rd.Files = *upd.Files
	}
}

func (rd *Read) SetFiles(files []File) {
	rd.Files = files
}

// GetReadIfHasFile returns rd when one of its files has the given id, nil
// otherwise.
func (rd *Read) GetReadIfHasFile(fileID string) *Read {
	for _, f := range rd.Files {
		if f.FileID == fileID {
			return rd
		}
	}
	return nil
}

func (rd *Read) Clone() *Read {
	c := *rd
	if rd.Files != nil {
		c.Files = make([]File, len(rd.Files))
		copy(c.Files, rd.Files)
	}
	return &c
}

func (rd *Read) String() string {
	sign := "-"
	if rd.Strand == StrandPos {
		sign = "+"
	}
	return fmt.Sprintf("%s(%d, %d)%s:%s", sign, rd.MinLen, rd.MaxLen, rd.ReadID, rd.PrimerID)
}
