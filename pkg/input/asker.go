// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

type Asker func(p survey.Prompt, response interface{}) error

var ErrNoDefaultResponse = errors.New("no default response")

func NewAsker(noPrompt bool, isTerminal bool, w io.Writer, r io.Reader) Asker {
	if noPrompt {
		return askOneNoPrompt
	}

	return func(p survey.Prompt, response interface{}) error {
		return askOnePrompt(p, response, isTerminal, w, r)
	}
}

func askOneNoPrompt(p survey.Prompt, response interface{}) error {
	switch v := p.(type) {
	case *survey.Input:
		if v.Default == "" {
			return fmt.Errorf("%w for prompt '%s'", ErrNoDefaultResponse, v.Message)
		}

		*(response.(*string)) = v.Default
	default:
		panic(fmt.Sprintf("don't know how to prompt for type %T", p))
	}

	return nil
}

func withShowCursor(o *survey.AskOptions) error {
	o.PromptConfig.ShowCursor = true
	return nil
}

// Like (*bufio.Reader).ReadString(byte) except that it does not buffer input from the input stream.
// Instead, it reads a byte at a time until a delimiter is found or EOF is encountered,
// returning bytes read with no extra characters consumed.
func readStringNoBuffer(r io.Reader, delim byte) (string, error) {
	strBuf := bytes.Buffer{}
	readBuf := make([]byte, 1)
	for {
		bytesRead, err := r.Read(readBuf)
		if bytesRead > 0 {
			// discard err, per documentation, WriteByte always succeeds.
			_ = strBuf.WriteByte(readBuf[0])
		}

		if err != nil {
			return strBuf.String(), err
		}

		if readBuf[0] == delim {
			return strBuf.String(), nil
		}
	}
}

func askOnePrompt(p survey.Prompt, response interface{}, isTerminal bool, stdout io.Writer, stdin io.Reader) error {
	if isTerminal {
		opts := []survey.AskOpt{
			survey.WithStdio(asFileReader(stdin), asFileWriter(stdout), os.Stderr),
		}

		// When asking a question which requires a text response, show the cursor, it helps
		// users understand we need some input.
		if _, ok := p.(*survey.Input); ok {
			opts = append(opts, withShowCursor)
		}

		opts = append(opts, survey.WithIcons(func(icons *survey.IconSet) {
			// use bold blue question mark for all questions
			icons.Question.Format = "blue+b"
			icons.Help.Format = "black+h"
			icons.Help.Text = "Hint:"
		}))

		return survey.AskOne(p, response, opts...)
	}

	switch v := p.(type) {
	case *survey.Input:
		var pResponse = response.(*string)
		fmt.Fprint(stdout, v.Message)
		if v.Default != "" {
			fmt.Fprintf(stdout, " (or hit enter to use the default %s)", v.Default)
		}
		fmt.Fprint(stdout, " ")
		result, err := readStringNoBuffer(stdin, '\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading response: %w", err)
		}
		result = strings.TrimSpace(result)
		if result == "" && v.Default != "" {
			result = v.Default
		}
		*pResponse = result
		return nil
	default:
		return fmt.Errorf("don't know how to prompt for type %T", p)
	}
}
