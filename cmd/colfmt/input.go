package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bjaus/colfmt"
)

var errTooManyYAMLInputs = errors.New("yaml mode reads a single input")

// readSource reads the items to lay out. Without paths it reads stdin. In
// line mode every non-blank line is an item; in YAML mode the single input is
// decoded with colfmt.DecodeYAML.
func readSource(stdin io.Reader, paths []string, asYAML bool) (colfmt.Source, error) {
	if asYAML {
		if len(paths) > 1 {
			return colfmt.Source{}, fmt.Errorf("%w: got %d files", errTooManyYAMLInputs, len(paths))
		}
		r, closeFn, err := openInput(stdin, paths)
		if err != nil {
			return colfmt.Source{}, err
		}
		defer closeFn()
		return colfmt.DecodeYAML(r)
	}

	if len(paths) == 0 {
		lines, err := readLines(stdin)
		if err != nil {
			return colfmt.Source{}, err
		}
		return colfmt.Values(lines...), nil
	}
	var all []string
	for _, path := range paths {
		lines, err := readFile(path)
		if err != nil {
			return colfmt.Source{}, err
		}
		all = append(all, lines...)
	}
	return colfmt.Values(all...), nil
}

func openInput(stdin io.Reader, paths []string) (io.Reader, func(), error) {
	if len(paths) == 0 {
		return stdin, func() {}, nil
	}
	f, err := os.Open(paths[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", paths[0], err)
	}
	return f, func() { _ = f.Close() }, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
