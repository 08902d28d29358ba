// Package ioyaml reads YAML documents from a file flag or piped stdin.
package ioyaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// ErrNoInput is returned when no file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); use -f flag or pipe YAML input")

type FileReader[T any] struct {
	fileFlagValue string

	// stdin and isTerminal are swapped out in tests.
	stdin      io.Reader
	isTerminal func() bool
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to YAML file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// Path returns the file flag value, or "-" when reading stdin.
func (fr *FileReader[T]) Path() string {
	if fr.fileFlagValue == "" {
		return "-"
	}
	return fr.fileFlagValue
}

func (fr *FileReader[T]) Read() (T, error) {
	var reader io.Reader
	var input T

	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		if fr.stdinIsTerminal() {
			return input, ErrNoInput
		}
		reader = fr.stdinReader()
	}

	return Decode[T](reader)
}

// Decode reads a single YAML document from r. Unknown fields are rejected.
func Decode[T any](r io.Reader) (T, error) {
	var out T

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return out, fmt.Errorf("decode YAML: empty document")
		}
		return out, fmt.Errorf("decode YAML: %w", err)
	}
	return out, nil
}

func (fr *FileReader[T]) stdinReader() io.Reader {
	if fr.stdin != nil {
		return fr.stdin
	}
	return os.Stdin
}

func (fr *FileReader[T]) stdinIsTerminal() bool {
	if fr.isTerminal != nil {
		return fr.isTerminal()
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}
