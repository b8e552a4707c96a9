// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"fmt"
	"io"
	"strings"
)

// Format names an output rendering selectable through --output.
type Format string

const (
	JsonFormat  Format = "json"
	TableFormat Format = "table"
)

// Formats lists every format acactl can render, in the order shown in help text.
var Formats = []Format{TableFormat, JsonFormat}

// Formatter renders a value, usually a slice of rows, to a writer.
// opts is formatter specific; the table formatter requires TableFormatterOptions.
type Formatter interface {
	Kind() Format
	Format(obj interface{}, writer io.Writer, opts interface{}) error
}

// ParseFormat matches name against Formats, ignoring case and surrounding spaces.
func ParseFormat(name string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, format := range Formats {
		if format == normalized {
			return format, nil
		}
	}

	return "", fmt.Errorf("unsupported format '%s' (supported formats are %s)", name, formatList(Formats))
}

func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case JsonFormat:
		return &JsonFormatter{}, nil
	case TableFormat:
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format '%s'", format)
	}
}

func formatList(formats []Format) string {
	names := make([]string, len(formats))
	for i, format := range formats {
		names[i] = string(format)
	}

	return strings.Join(names, ", ")
}
