package pricebook

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PaesslerAG/jsonpath"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// this file contains the readers for uploaded price sheets.
// Every reader returns a *Table, the validation happens on the table.

// ErrUnsupportedFormat is returned for files that no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ReadTable reads a sheet, choosing the reader from the extension of name.
//
// Supported extensions are .xlsx (.xlsm, .xltx), .csv (.txt) and .json.
// The legacy binary .xls format is not supported.
func ReadTable(name string, r io.Reader) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm", ".xltx":
		return ReadXLSXTable(r)
	case ".csv", ".txt":
		return ReadCSVTable(r)
	case ".json":
		return ReadJSONTable(r, "")
	case ".xls":
		return nil, fmt.Errorf("%w: %q, save the sheet as .xlsx", ErrUnsupportedFormat, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ReadCSVTable reads a comma separated sheet.
//
// The content is expected in UTF-8, a leading byte order mark is ignored.
// Content that is not valid UTF-8 is decoded as GB18030, the encoding
// used by spreadsheet programs on chinese systems.
func ReadCSVTable(r io.Reader) (*Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read csv: %w", err)
	}
	content = bytes.TrimPrefix(content, []byte("\ufeff"))
	if !utf8.Valid(content) {
		decoded, _, err := transform.Bytes(simplifiedchinese.GB18030.NewDecoder(), content)
		if err != nil {
			return nil, fmt.Errorf("cannot decode csv: %w", err)
		}
		content = decoded
	}

	cr := csv.NewReader(bytes.NewReader(content))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse csv: %w", err)
	}
	return tableFromRows(rows), nil
}

// ReadJSONTable reads an array of json objects, each object being a row.
//
// When path is not empty it is a JSONPath expression ("$.data.prices")
// selecting the array inside the document. A single object is a single row.
// The header is the union of the object keys: the keys of the first object
// sorted, then the keys first seen in later objects.
func ReadJSONTable(r io.Reader, path string) (*Table, error) {
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse json: %w", err)
	}
	if path != "" && path != "$" {
		v, err := jsonpath.Get(path, doc)
		if err != nil {
			return nil, fmt.Errorf("cannot select %q: %w", path, err)
		}
		doc = v
	}

	var objects []map[string]any
	switch v := doc.(type) {
	case map[string]any:
		objects = append(objects, v)
	case []any:
		for i, e := range v {
			o, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("json row %d is not an object", i+1)
			}
			objects = append(objects, o)
		}
	default:
		return nil, fmt.Errorf("json document is not an array of objects")
	}

	t := &Table{}
	seen := make(map[string]bool)
	for _, o := range objects {
		var keys []string
		for k := range o {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)
		for _, k := range keys {
			seen[k] = true
		}
		t.Header = append(t.Header, keys...)
	}
	for _, o := range objects {
		row := make([]string, len(t.Header))
		for j, h := range t.Header {
			row[j] = jsonCell(o[h])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func jsonCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}
