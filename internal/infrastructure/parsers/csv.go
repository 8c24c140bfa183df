package parsers

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/emryn/chronicle/internal/domain/entities"
)

// ConnectionRecord is one row of a connection import file: a typed
// connection plus the entity it originates from. References are loose names
// or ids, resolved later against the node index.
type ConnectionRecord struct {
	Source     string
	Connection entities.Connection
	LineNum    int
}

// ParseConnectionsCSV reads connection rows from CSV.
// Expected columns: source, target, type, label (label optional).
func ParseConnectionsCSV(r io.Reader) ([]ConnectionRecord, error) {
	reader := csv.NewReader(r)

	colIndex, err := readHeader(reader)
	if err != nil {
		return nil, err
	}

	var records []ConnectionRecord
	lineNum := 1 // Header is line 1
	for {
		lineNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		rec, err := parseRow(row, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// readHeader reads and validates the CSV header row.
func readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[col] = i
	}

	for _, col := range []string{"source", "target", "type"} {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// parseRow converts a CSV row to a ConnectionRecord.
func parseRow(row []string, colIndex map[string]int, lineNum int) (ConnectionRecord, error) {
	relType := getColumn(row, colIndex, "type")
	if relType != "" && !entities.IsValidRelationshipType(relType) {
		return ConnectionRecord{}, fmt.Errorf("line %d: invalid relationship type %q (valid: %v)",
			lineNum, relType, entities.ValidRelationshipTypes)
	}

	return ConnectionRecord{
		Source: getColumn(row, colIndex, "source"),
		Connection: entities.Connection{
			Target: getColumn(row, colIndex, "target"),
			Type:   entities.RelationshipType(relType),
			Label:  getColumn(row, colIndex, "label"),
		},
		LineNum: lineNum,
	}, nil
}

// getColumn safely retrieves a column value from a row.
func getColumn(row []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(row) {
		return row[idx]
	}
	return ""
}
