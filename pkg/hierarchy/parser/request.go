package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"gopkg.in/yaml.v3"
)

// ReadFile loads a request from path. Spreadsheet and CSV files supply only
// the dataset; JSON and YAML files hold either a full request or a bare
// list of records.
func ReadFile(path string, opts SheetOptions) (models.Request, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		ds, err := ReadWorkbook(path, opts)
		if err != nil {
			return models.Request{}, err
		}
		return models.Request{Dataset: ds}, nil
	case ".csv":
		ds, err := ReadCSVFile(path)
		if err != nil {
			return models.Request{}, err
		}
		return models.Request{Dataset: ds}, nil
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return models.Request{}, err
		}
		return DecodeJSONRequest(data)
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return models.Request{}, err
		}
		return DecodeYAMLRequest(data)
	default:
		return models.Request{}, fmt.Errorf("unsupported input format %q", ext)
	}
}

// DecodeJSONRequest parses a JSON request object or record array.
func DecodeJSONRequest(data []byte) (models.Request, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var ds models.Dataset
		if err := json.Unmarshal(trimmed, &ds); err != nil {
			return models.Request{}, fmt.Errorf("decode dataset: %w", err)
		}
		return models.Request{Dataset: ds}, nil
	}

	var req models.Request
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return models.Request{}, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

// DecodeYAMLRequest parses a YAML request mapping or record sequence.
func DecodeYAMLRequest(data []byte) (models.Request, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return models.Request{}, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return models.Request{}, fmt.Errorf("empty document")
	}
	doc := root.Content[0]

	switch doc.Kind {
	case yaml.SequenceNode:
		var ds models.Dataset
		if err := doc.Decode(&ds); err != nil {
			return models.Request{}, fmt.Errorf("decode dataset: %w", err)
		}
		return models.Request{Dataset: ds}, nil
	case yaml.MappingNode:
		var req models.Request
		if err := doc.Decode(&req); err != nil {
			return models.Request{}, fmt.Errorf("decode request: %w", err)
		}
		return req, nil
	default:
		return models.Request{}, fmt.Errorf("line %d: expected a mapping or a sequence", doc.Line)
	}
}
