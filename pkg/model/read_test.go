package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadUpdate(t *testing.T) {
	rd := &Read{ReadID: "R1", Name: "Read 1", Modality: "rna", PrimerID: "p1", MinLen: 28, MaxLen: 28, Strand: StrandPos}

	maxLen := int64(150)
	neg := StrandNeg
	files := []File{{FileID: "f1"}}
	rd.Update(ReadUpdate{MaxLen: &maxLen, Strand: &neg, Files: &files})

	assert.Equal(t, int64(28), rd.MinLen)
	assert.Equal(t, int64(150), rd.MaxLen)
	assert.Equal(t, StrandNeg, rd.Strand)
	assert.Equal(t, "R1", rd.ReadID)
	assert.Equal(t, "p1", rd.PrimerID)
	assert.Equal(t, files, rd.Files)

	rd.Update(ReadUpdate{})
	assert.Equal(t, int64(150), rd.MaxLen)
}

func TestGetReadIfHasFile(t *testing.T) {
	rd := &Read{ReadID: "R1"}
	rd.SetFiles([]File{{FileID: "a.fastq.gz"}, {FileID: "b.fastq.gz"}})

	assert.Same(t, rd, rd.GetReadIfHasFile("b.fastq.gz"))
	assert.Nil(t, rd.GetReadIfHasFile("c.fastq.gz"))
	assert.Nil(t, (&Read{}).GetReadIfHasFile(""))
}

func TestReadString(t *testing.T) {
	assert.Equal(t, "+(28, 28)R1:truseq_read1", (&Read{ReadID: "R1", PrimerID: "truseq_read1", MinLen: 28, MaxLen: 28, Strand: StrandPos}).String())
	assert.Equal(t, "-(1, 90)R2:p2", (&Read{ReadID: "R2", PrimerID: "p2", MinLen: 1, MaxLen: 90, Strand: StrandNeg}).String())
}

func TestReadClone(t *testing.T) {
	rd := &Read{ReadID: "R1", Files: []File{{FileID: "a"}}}
	c := rd.Clone()
	c.Files[0].FileID = "b"
	assert.Equal(t, "a", rd.Files[0].FileID)
}
