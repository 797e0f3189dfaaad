// ASCII view of a library: read arrows over both strands

package render

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/template"

	"github.com/yumyai/seqspec/logger"
	"github.com/yumyai/seqspec/pkg/model"
	"go.uber.org/zap"
)

var libraryTemplate *template.Template

type libraryView struct {
	Modality   string
	Positive   []string
	Sequence   string
	Complement string
	Negative   []string
}

func init() {
	mainTmpl := `{{ .Modality }}
---
{{ join .Positive "\n" }}
{{ .Sequence }}
{{ .Complement }}
{{ join .Negative "\n" }}`

	libraryTemplate = template.New("library_ascii").Funcs(template.FuncMap{
		"join": strings.Join,
	})
	libraryTemplate = template.Must(libraryTemplate.Parse(mainTmpl))
}

func spaces(n int64) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", int(n))
}

func dashes(n int64) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("-", int(n))
}

// ReadArrows draws every read of the modality as an arrow anchored on its
// primer. Pos reads start where the primer ends and point right; neg reads
// end where the primer starts and point left. Reads are numbered from 1 in
// sequence_spec order.
func ReadArrows(a *model.Assay, modality string) (pos []string, neg []string, err error) {
	libspec, err := a.GetLibrarySpec(modality)
	if err != nil {
		return nil, nil, err
	}

	pos, neg = make([]string, 0), make([]string, 0)
	for i, rd := range a.GetSequenceSpec(modality) {
		leaves := libspec.LeavesCutAt(rd.PrimerID)
		primerIdx := slices.IndexFunc(leaves, func(r *model.Region) bool { return r.RegionID == rd.PrimerID })
		if primerIdx < 0 {
			return nil, nil, fmt.Errorf("%w: primer '%s' of read '%s'", model.ErrRegionNotFound, rd.PrimerID, rd.ReadID)
		}
		primer := model.ProjectRegionsToCoordinates(leaves)[primerIdx]
		arrow := dashes(rd.MaxLen - 1)

		switch rd.Strand {
		case model.StrandPos:
			pos = append(pos, fmt.Sprintf("%s|%s>(%d) %s", spaces(primer.Stop-1), arrow, i+1, rd.ReadID))
		case model.StrandNeg:
			neg = append(neg, fmt.Sprintf("%s<%s|(%d) %s", spaces(primer.Start-rd.MaxLen), arrow, i+1, rd.ReadID))
		}
	}
	return pos, neg, nil
}

// RenderLibrarySequence writes the modality name, the positive strand reads,
// the library sequence and its complement, then the negative strand reads.
func RenderLibrarySequence(w io.Writer, a *model.Assay, modality string) error {
	pos, neg, err := ReadArrows(a, modality)
	if err != nil {
		return err
	}
	libspec, err := a.GetLibrarySpec(modality)
	if err != nil {
		return err
	}

	seq := libspec.GetSequence()
	view := libraryView{
		Modality:   modality,
		Positive:   pos,
		Sequence:   seq,
		Complement: model.ComplementSequence(seq),
		Negative:   neg,
	}

	logger.Debug("Rendering library", zap.String("assay_id", a.AssayID), zap.String("modality", modality))
	return libraryTemplate.Execute(w, view)
}
