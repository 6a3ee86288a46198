// Package xlsx turns the first worksheet of a workbook into documents.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"

	"churnpredict/entities"
)

var ErrNoHeader = errors.New("spreadsheet has no header row")

// Read parses the first sheet. Row one is the header; every later non-blank
// row becomes a document keyed by header, with blank cells left out.
func Read(r io.Reader) ([]entities.Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 || blank(rows[0]) {
		return nil, ErrNoHeader
	}
	header := headerNames(rows[0])

	docs := make([]entities.Document, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		doc := entities.Document{}
		for col, raw := range row {
			if col >= len(header) {
				break
			}
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			doc = append(doc, bson.E{Key: header[col], Value: cellValue(f, sheet, col+1, rowNum, raw)})
		}
		if len(doc) > 0 {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// headerNames trims names, fills blanks with column_N and suffixes repeats.
func headerNames(row []string) []string {
	out := make([]string, len(row))
	seen := map[string]int{}
	for i, name := range row {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "column_" + strconv.Itoa(i+1)
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = name + "_" + strconv.Itoa(n)
		}
		out[i] = name
	}
	return out
}

func cellValue(f *excelize.File, sheet string, col, row int, raw string) any {
	switch raw {
	case "TRUE", "true":
		return true
	case "FALSE", "false":
		return false
	case "0", "1":
		// boolean cells come back as 0/1 in raw mode
		if ref, err := excelize.CoordinatesToCellName(col, row); err == nil {
			if t, err := f.GetCellType(sheet, ref); err == nil && t == excelize.CellTypeBool {
				return raw == "1"
			}
		}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if x, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(x) && !math.IsInf(x, 0) {
		return x
	}
	return raw
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
