package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrUnknownColumn = errors.New("unknown column")

// Table is a named set of rows in the "split" layout: one column list and
// one value list per row.
type Table struct {
	Name    string          `json:"name"`
	Columns []string        `json:"columns"`
	Data    [][]interface{} `json:"data"`
}

// NewTable projects rows on the selected columns. An empty selection keeps
// every column.
func NewTable(name string, columns []string, rows []Row, selected []string) (*Table, error) {
	index := make([]int, 0, len(columns))
	if len(selected) == 0 {
		for i := range columns {
			index = append(index, i)
		}
		selected = columns
	} else {
		position := make(map[string]int, len(columns))
		for i, c := range columns {
			position[c] = i
		}
		for _, c := range selected {
			i, ok := position[c]
			if !ok {
				return nil, fmt.Errorf("table %s: %w: %s", name, ErrUnknownColumn, c)
			}
			index = append(index, i)
		}
	}

	table := &Table{
		Name:    name,
		Columns: append([]string(nil), selected...),
		Data:    make([][]interface{}, 0, len(rows)),
	}
	for _, row := range rows {
		values := row.Values()
		projected := make([]interface{}, len(index))
		for j, i := range index {
			projected[j] = values[i]
		}
		table.Data = append(table.Data, projected)
	}
	return table, nil
}

func RelationTable(rows []RelationRow, selected []string) (*Table, error) {
	generic := make([]Row, len(rows))
	for i, r := range rows {
		generic[i] = r
	}
	return NewTable("relations", RelationColumns, generic, selected)
}

func SVOTable(rows []SVORow, selected []string) (*Table, error) {
	generic := make([]Row, len(rows))
	for i, r := range rows {
		generic[i] = r
	}
	return NewTable("svos", SVOColumns, generic, selected)
}

func TokenTable(rows []TokenRow, selected []string) (*Table, error) {
	generic := make([]Row, len(rows))
	for i, r := range rows {
		generic[i] = r
	}
	return NewTable("tokens", TokenColumns, generic, selected)
}

func WriteJSON(w io.Writer, tables ...*Table) error {
	return json.NewEncoder(w).Encode(tables)
}

// WriteCSV writes the header and rows of a table. Lists are written as
// JSON arrays.
func WriteCSV(w io.Writer, table *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(table.Columns); err != nil {
		return err
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Data {
		for i, v := range row {
			s, err := FormatValue(v)
			if err != nil {
				return fmt.Errorf("table %s column %s: %w", table.Name, table.Columns[i], err)
			}
			record[i] = s
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// FormatValue renders a cell as text.
func FormatValue(v interface{}) (string, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case int:
		return strconv.Itoa(value), nil
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64), nil
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
