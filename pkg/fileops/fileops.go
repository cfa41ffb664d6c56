// Package fileops reads bookmark files and writes generated output.
//
// Output goes through a synthfs pipeline into a temporary file next to the
// target, which is renamed over the final path once the write succeeded. A
// failed run never leaves a partial output file behind.
package fileops

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/bmtidy/pkg/errors"
	"github.com/arthur-debert/bmtidy/pkg/logging"
)

// ReadInput reads a bookmark file and maps failures onto bmtidy error
// codes: a missing file is ErrInputNotFound, everything else ErrInputRead.
func ReadInput(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrInputNotFound,
				"input file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrInputRead,
			"cannot access input file: %s", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrInputRead,
			"input path is a directory: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead,
			"failed to read input file: %s", path)
	}
	return data, nil
}

// Writer persists generated bookmark files.
type Writer struct {
	logger     zerolog.Logger
	filesystem synthfs.FileSystem
	dryRun     bool
}

// NewWriter returns a writer rooted at the host filesystem. In dry-run
// mode WriteFile logs what it would do and touches nothing.
func NewWriter(dryRun bool) *Writer {
	return &Writer{
		logger:     logging.GetLogger("fileops"),
		filesystem: filesystem.NewOSFileSystem("/"), // Use root filesystem
		dryRun:     dryRun,
	}
}

// WriteFile writes data to path, replacing any existing file. The rename
// at the end is the commit point: until it happens, the target keeps its
// previous content.
func (w *Writer) WriteFile(path string, data []byte) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite,
			"failed to resolve output path: %s", path)
	}

	if w.dryRun {
		w.logger.Info().
			Str("target", target).
			Int("contentLen", len(data)).
			Msg("Dry run - would write file")
		return nil
	}

	tempPath := fmt.Sprintf("%s.tmp-%s", target, uuid.NewString()[:8])
	if err := w.writeTemp(tempPath, data); err != nil {
		return err
	}

	if err := os.Rename(tempPath, target); err != nil {
		if rmErr := os.Remove(tempPath); rmErr != nil {
			w.logger.Warn().Err(rmErr).
				Str("path", tempPath).
				Msg("Failed to clean up temporary file")
		}
		return errors.Wrapf(err, errors.ErrOutputWrite,
			"failed to move output into place: %s", target)
	}

	w.logger.Debug().
		Str("target", target).
		Int("bytes", len(data)).
		Msg("Wrote output file")
	return nil
}

// writeTemp creates the temporary file through a synthfs pipeline.
func (w *Writer) writeTemp(tempPath string, data []byte) error {
	// Convert absolute path to relative for synthfs
	relPath, err := filepath.Rel("/", tempPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite,
			"failed to convert path: %s", tempPath)
	}

	opID := core.OperationID(fmt.Sprintf("write-file-%s", tempPath))
	createOp := operations.NewCreateFileOperation(opID, relPath)
	createOp.SetItem(&fileItem{
		path:    relPath,
		content: data,
		mode:    0644,
	})

	pipeline := synthfs.NewMemPipeline()
	if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(createOp)); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite,
			"failed to add operation to pipeline")
	}

	executor := synthfs.NewExecutor()
	result := executor.Run(context.Background(), pipeline, w.filesystem)
	if result.GetError() != nil {
		_ = os.Remove(tempPath)
		return errors.Wrapf(result.GetError(), errors.ErrOutputWrite,
			"failed to write temporary file: %s", tempPath)
	}

	return nil
}

// fileItem implements the item interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }
