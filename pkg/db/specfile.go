package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yumyai/seqspec/internal/util"
	"github.com/yumyai/seqspec/pkg/model"
	"gopkg.in/yaml.v3"
)

var ErrSpecNotExists = errors.New("spec file does not exist")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension. Anything that is
// not .json is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

func LoadSpecFile(path string) (*model.Assay, error) {
	if !util.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrSpecNotExists, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeSpec(data, FormatFromPath(path))
}

// DecodeSpec parses a spec document. YAML goes through a generic tree and
// then the JSON codec, so both formats share one set of decoding rules.
func DecodeSpec(data []byte, format Format) (*model.Assay, error) {
	if format == FormatJSON {
		return model.AssayFromJSON(data)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &model.ParseError{Kind: "assay", Err: err}
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, &model.ParseError{Kind: "assay", Err: fmt.Errorf("top level is %T, want a mapping", doc)}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &model.ParseError{Kind: "assay", Err: err}
	}
	return model.AssayFromJSON(raw)
}

// EncodeYAML renders an assay as block YAML with fields in declaration order.
func EncodeYAML(a *model.Assay) ([]byte, error) {
	raw, err := a.ToJSON()
	if err != nil {
		return nil, err
	}

	// JSON is valid YAML; decoding into a node keeps key order
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("convert assay to yaml: %w", err)
	}
	clearStyle(&node)

	return yaml.Marshal(&node)
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// WriteSpecFile writes the assay as YAML, or indented JSON for .json paths.
func WriteSpecFile(path string, a *model.Assay) error {
	var (
		data []byte
		err  error
	)
	if FormatFromPath(path) == FormatJSON {
		data, err = json.MarshalIndent(a, "", "  ")
	} else {
		data, err = EncodeYAML(a)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create dirs: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
