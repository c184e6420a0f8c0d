package input

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/lensmap/internal/utils"
	"io"
	"os"
)

// ForEachLine - Calls fn with every line of the file, line endings removed. A final empty line (file ending in
// a line break) is not passed on. Reading stops at the first error returned by fn.
//   - fileName is the file to read
//   - fn receives the one-based line number and the line
func ForEachLine(fileName string, fn func(lineNo int, line string) error) (err error) {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while opening input file: %w", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	return ReadLines(f, fn)
}

// ReadLines - Same as ForEachLine but reads from r
func ReadLines(r io.Reader, fn func(lineNo int, line string) error) (err error) {
	var line string
	var lineNo int
	fr := bufio.NewReader(r)

	for {
		line, err = fr.ReadString('\n')
		if errors.Is(err, io.EOF) {
			if line == "" {
				err = nil
				return
			}
		} else if err != nil {
			err = fmt.Errorf("error while reading input: %w", err)
			return
		}

		lineNo++
		if fnErr := fn(lineNo, utils.TrimLineEnding(line)); fnErr != nil {
			return fnErr
		}

		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
	}
}

// FirstLine - Returns the first line of the file with its line ending removed. An empty file is an error.
func FirstLine(fileName string) (line string, err error) {
	var found bool
	stop := errors.New("stop")

	err = ForEachLine(fileName, func(_ int, l string) error {
		line = l
		found = true
		return stop
	})
	if errors.Is(err, stop) {
		err = nil
	}
	if err == nil && !found {
		err = fmt.Errorf("input file %s is empty", fileName)
	}

	return
}

// Lines - Returns all lines of the file with line endings removed
func Lines(fileName string) (lines []string, err error) {
	err = ForEachLine(fileName, func(_ int, l string) error {
		lines = append(lines, l)
		return nil
	})

	return
}
