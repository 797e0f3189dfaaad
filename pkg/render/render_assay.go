// Plain-text summary of an assay

package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/yumyai/seqspec/logger"
	"github.com/yumyai/seqspec/pkg/model"
	"go.uber.org/zap"
)

var summaryTemplate *template.Template

// ModalitySummary is one modality of an AssaySummary.
type ModalitySummary struct {
	Modality string   `json:"modality"`
	Layout   string   `json:"layout"`
	MinLen   int64    `json:"min_len"`
	MaxLen   int64    `json:"max_len"`
	Reads    []string `json:"reads"`
}

type AssaySummary struct {
	AssayID    string            `json:"assay_id"`
	Name       string            `json:"name"`
	Modalities []ModalitySummary `json:"modalities"`
}

func init() {
	mainTmpl := `Assay: {{ .AssayID }}{{ if .Name }} ({{ .Name }}){{ end }}
Modalities: {{ join .ModalityNames ", " }}
{{- range .Modalities }}

[{{ .Modality }}] {{ .Layout }}
  length: {{ .MinLen }}-{{ .MaxLen }}
{{- range .Reads }}
  {{ . }}
{{- else }}
  (no reads)
{{- end }}
{{- end }}
`

	summaryTemplate = template.New("assay_summary").Funcs(template.FuncMap{
		"join": strings.Join,
	})
	summaryTemplate = template.Must(summaryTemplate.Parse(mainTmpl))
}

// Layout renders the leaves of a region as 5'-a-b-c-3'.
func Layout(r *model.Region) string {
	leaves := r.Leaves()
	parts := make([]string, 0, len(leaves)+2)
	parts = append(parts, "5'")
	for _, leaf := range leaves {
		parts = append(parts, leaf.RegionID)
	}
	parts = append(parts, "3'")
	return strings.Join(parts, "-")
}

// BuildAssaySummary collects the per-modality layout and reads. It fails on
// the first modality whose library spec cannot be resolved.
func BuildAssaySummary(a *model.Assay) (AssaySummary, error) {
	summary := AssaySummary{
		AssayID:    a.AssayID,
		Name:       a.Name,
		Modalities: make([]ModalitySummary, 0, len(a.Modalities)),
	}

	for _, modality := range a.Modalities {
		libspec, err := a.GetLibrarySpec(modality)
		if err != nil {
			return AssaySummary{}, err
		}

		minLen, maxLen := libspec.GetLength()
		ms := ModalitySummary{
			Modality: modality,
			Layout:   Layout(libspec),
			MinLen:   minLen,
			MaxLen:   maxLen,
			Reads:    make([]string, 0),
		}
		for _, rd := range a.GetSequenceSpec(modality) {
			ms.Reads = append(ms.Reads, rd.String())
		}
		summary.Modalities = append(summary.Modalities, ms)
	}
	return summary, nil
}

func (s AssaySummary) ModalityNames() []string {
	names := make([]string, len(s.Modalities))
	for i, m := range s.Modalities {
		names[i] = m.Modality
	}
	return names
}

func RenderAssaySummary(w io.Writer, a *model.Assay) error {
	summary, err := BuildAssaySummary(a)
	if err != nil {
		return err
	}

	logger.Debug("Rendering assay summary", zap.String("assay_id", a.AssayID))
	if err := summaryTemplate.Execute(w, summary); err != nil {
		return fmt.Errorf("render summary of %s: %w", a.AssayID, err)
	}
	return nil
}
