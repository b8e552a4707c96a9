// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
	"text/template"
)

var ErrTableOptionsRequired = errors.New("table formatter requires TableFormatterOptions")

type Column struct {
	// Text displayed in the header row
	Heading string
	// text/template evaluated against each row value
	ValueTemplate string
}

type TableFormatterOptions struct {
	Columns []Column
}

// TableFormatter writes a slice of values as an aligned table with a header row.
// A cell value containing newlines spans several lines; the other cells of those lines are left blank.
type TableFormatter struct {
}

func (f *TableFormatter) Kind() Format {
	return TableFormat
}

func (f *TableFormatter) Format(obj interface{}, writer io.Writer, opts interface{}) error {
	options, ok := opts.(TableFormatterOptions)
	if !ok {
		return ErrTableOptionsRequired
	}

	if len(options.Columns) == 0 {
		return errors.New("at least one column is required")
	}

	templates := make([]*template.Template, len(options.Columns))
	headings := make([]string, len(options.Columns))
	for i, column := range options.Columns {
		tmpl, err := template.New(column.Heading).Parse(column.ValueTemplate)
		if err != nil {
			return fmt.Errorf("parsing template for column '%s': %w", column.Heading, err)
		}

		templates[i] = tmpl
		headings[i] = column.Heading
	}

	rows, err := rowValues(obj)
	if err != nil {
		return err
	}

	var table bytes.Buffer
	tabs := tabwriter.NewWriter(&table, 0, 4, 2, ' ', 0)
	writeLine(tabs, headings)

	for _, row := range rows {
		cells := make([][]string, len(templates))
		height := 1

		for i, tmpl := range templates {
			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, row); err != nil {
				return fmt.Errorf("formatting column '%s': %w", headings[i], err)
			}

			cells[i] = strings.Split(buf.String(), "\n")
			if len(cells[i]) > height {
				height = len(cells[i])
			}
		}

		for line := 0; line < height; line++ {
			values := make([]string, len(cells))
			for i, cell := range cells {
				if line < len(cell) {
					values[i] = cell[line]
				}
			}

			writeLine(tabs, values)
		}
	}

	if err := tabs.Flush(); err != nil {
		return err
	}

	// Blank trailing cells still get padded.
	lines := strings.Split(strings.TrimSuffix(table.String(), "\n"), "\n")
	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}

	return nil
}

func writeLine(w io.Writer, values []string) {
	fmt.Fprintln(w, strings.Join(values, "\t"))
}

func rowValues(obj interface{}) ([]interface{}, error) {
	if obj == nil {
		return nil, nil
	}

	value := reflect.ValueOf(obj)
	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		return []interface{}{obj}, nil
	}

	rows := make([]interface{}, value.Len())
	for i := 0; i < value.Len(); i++ {
		rows[i] = value.Index(i).Interface()
	}

	return rows, nil
}

var _ Formatter = (*TableFormatter)(nil)
