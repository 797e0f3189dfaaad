package request

// ViewFormat selects how a handler renders its payload.
type ViewFormat int

const (
	ViewFormatJSON ViewFormat = iota
	ViewFormatYAML
	ViewFormatNewick
	ViewFormatASCII
	ViewFormatText
)

func (f ViewFormat) String() string {
	switch f {
	case ViewFormatJSON:
		return "json"
	case ViewFormatYAML:
		return "yaml"
	case ViewFormatNewick:
		return "newick"
	case ViewFormatASCII:
		return "ascii"
	case ViewFormatText:
		return "text"
	default:
		return "json"
	}
}

// NewViewFormat maps a ?format= value. An empty value gives fallback and an
// unknown one reports ok=false.
func NewViewFormat(format string, fallback ViewFormat) (ViewFormat, bool) {
	switch format {
	case "":
		return fallback, true
	case "json":
		return ViewFormatJSON, true
	case "yaml", "yml":
		return ViewFormatYAML, true
	case "newick":
		return ViewFormatNewick, true
	case "ascii":
		return ViewFormatASCII, true
	case "text":
		return ViewFormatText, true
	default:
		return fallback, false
	}
}
