package model

func leaf(id, regionType string, seqType SequenceType, seq string, minLen, maxLen int64) *Region {
	return &Region{
		RegionID:     id,
		RegionType:   regionType,
		Name:         id,
		SequenceType: seqType,
		Sequence:     seq,
		MinLen:       minLen,
		MaxLen:       maxLen,
	}
}

func node(id string, children ...*Region) *Region {
	return &Region{
		RegionID:     id,
		RegionType:   id,
		Name:         id,
		SequenceType: SequenceTypeJoined,
		Regions:      children,
	}
}

func ids(regions []*Region) []string {
	out := make([]string, len(regions))
	for i, r := range regions {
		out[i] = r.RegionID
	}
	return out
}

// rnaAssay is a small single-cell RNA layout:
// rna(truseq_read1, barcode, umi, cdna, truseq_read2) with R1 and R2.
func rnaAssay() *Assay {
	barcode := leaf("barcode", "barcode", SequenceTypeOnlist, "", 16, 16)
	barcode.Onlist = &Onlist{FileID: "3M-february-2018.txt", Filename: "3M-february-2018.txt", Filetype: "txt", URLType: "local"}

	rna := node("rna",
		leaf("truseq_read1", "truseq_read1", SequenceTypeFixed, "ACACTCTTTCCCTACACGACGCTCTTCCGATCT", 33, 33),
		barcode,
		leaf("umi", "umi", SequenceTypeRandom, "", 12, 12),
		leaf("cdna", "cdna", SequenceTypeRandom, "", 1, 98),
		leaf("truseq_read2", "truseq_read2", SequenceTypeFixed, "AGATCGGAAGAGCACACGTCTGAACTCCAGTCAC", 34, 34),
	)
	rna.Resynchronize()

	return &Assay{
		AssayID:    "10x-rna",
		Name:       "10x RNA",
		Modalities: []string{"rna"},
		LibStruct:  "",
		SequenceSpec: []*Read{
			{
				ReadID: "R1", Name: "Read 1", Modality: "rna", PrimerID: "truseq_read1",
				MinLen: 28, MaxLen: 28, Strand: StrandPos,
				Files: []File{{FileID: "R1.fastq.gz", Filename: "R1.fastq.gz", Filetype: "fastq", URLType: "local"}},
			},
			{
				ReadID: "R2", Name: "Read 2", Modality: "rna", PrimerID: "truseq_read2",
				MinLen: 90, MaxLen: 90, Strand: StrandNeg,
				Files: []File{{FileID: "R2.fastq.gz", Filename: "R2.fastq.gz", Filetype: "fastq", URLType: "local"}},
			},
		},
		LibrarySpec: []*Region{rna},
	}
}
