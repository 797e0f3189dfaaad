package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFindSelector(t *testing.T) {
	for _, name := range []string{"read", "region", "region-type", "file"} {
		sel, err := ParseFindSelector(name)
		require.NoError(t, err)
		assert.Equal(t, name, sel.String())
	}

	_, err := ParseFindSelector("genome")
	assert.ErrorIs(t, err, ErrUnknownSelector)
}

func TestFind(t *testing.T) {
	a := rnaAssay()

	res, err := a.Find(FindRead, "rna", "R2")
	require.NoError(t, err)
	assert.Equal(t, []string{"R2"}, readIDs(res.Reads))

	res, err = a.Find(FindRegion, "rna", "umi")
	require.NoError(t, err)
	assert.Equal(t, []string{"umi"}, ids(res.Regions))

	res, err = a.Find(FindRegionType, "rna", "truseq_read2")
	require.NoError(t, err)
	assert.Equal(t, []string{"truseq_read2"}, ids(res.Regions))

	res, err = a.Find(FindFile, "rna", "3M-february-2018.txt")
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "txt", res.Files[0].Filetype)

	res, err = a.Find(FindFile, "rna", "R1.fastq.gz")
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	_, err = a.Find(FindRegion, "atac", "umi")
	assert.ErrorIs(t, err, ErrModalityNotFound)
}
