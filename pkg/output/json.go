// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"encoding/json"
	"io"
	"reflect"
)

// JsonFormatter writes indented JSON followed by a newline.
// HTML characters are not escaped, so "R&D" stays "R&D" rather than "R\u0026D". A nil slice is written as [].
type JsonFormatter struct {
}

func (f *JsonFormatter) Kind() Format {
	return JsonFormat
}

func (f *JsonFormatter) Format(obj interface{}, writer io.Writer, _ interface{}) error {
	if value := reflect.ValueOf(obj); value.Kind() == reflect.Slice && value.IsNil() {
		obj = []any{}
	}

	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	return encoder.Encode(obj)
}

var _ Formatter = (*JsonFormatter)(nil)
