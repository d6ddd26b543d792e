package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
)

// ReadCSVFile reads a comma-separated file as a dataset.
func ReadCSVFile(path string) (models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f, ',')
}

// ReadCSV reads delimited text whose first line names the fields.
func ReadCSV(r io.Reader, comma rune) (models.Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var ds models.Dataset
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if rec := rowToRecord(header, row, 0); len(rec) > 0 {
			ds = append(ds, rec)
		}
	}
	return ds, nil
}
