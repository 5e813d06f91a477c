package input

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mower-cli/internal/logger"
)

// Ensure sources implement the interface.
var (
	_ driven.InputSource = (*FileSource)(nil)
	_ driven.InputSource = (*StdinSource)(nil)
	_ driven.InputSource = (*TextSource)(nil)
)

// StdinName is the source name used for standard input and the "-" path.
const StdinName = "stdin"

// FileSource reads the input description from a file.
type FileSource struct {
	path string
}

// NewFileSource creates a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Read returns the file content.
// An empty path means no file was supplied and yields domain.ErrFileRequired.
func (s *FileSource) Read(ctx context.Context) (string, error) {
	if s.path == "" {
		return "", domain.ErrFileRequired
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	logger.Debug("Read %d byte(s) from %s", len(data), s.path)
	return string(data), nil
}

// StdinSource reads the input description from a stream, normally os.Stdin.
type StdinSource struct {
	reader     io.Reader
	isTerminal func() bool
}

// NewStdinSource creates a source reading os.Stdin.
func NewStdinSource() *StdinSource {
	return &StdinSource{
		reader: os.Stdin,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// NewReaderSource creates a source reading r, which is never interactive.
func NewReaderSource(r io.Reader) *StdinSource {
	return &StdinSource{
		reader:     r,
		isTerminal: func() bool { return false },
	}
}

// Name returns StdinName.
func (s *StdinSource) Name() string {
	return StdinName
}

// Read returns everything on the stream.
// An interactive terminal has nothing piped in and yields domain.ErrFileRequired.
func (s *StdinSource) Read(ctx context.Context) (string, error) {
	if s.isTerminal() {
		return "", domain.ErrFileRequired
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(s.reader)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", StdinName, err)
	}
	logger.Debug("Read %d byte(s) from %s", len(data), StdinName)
	return string(data), nil
}

// TextSource serves text that is already in memory.
type TextSource struct {
	name string
	text string
}

// NewTextSource creates a source named name serving text.
func NewTextSource(name, text string) *TextSource {
	return &TextSource{name: name, text: text}
}

// Name returns the source name.
func (s *TextSource) Name() string {
	return s.name
}

// Read returns the text.
func (s *TextSource) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.text, nil
}

// Resolve picks the source for a CLI argument: "" or "-" read standard
// input, anything else is a file path.
func Resolve(arg string) driven.InputSource {
	if arg == "" || arg == "-" {
		return NewStdinSource()
	}
	return NewFileSource(arg)
}
