// Package flatten implements the core of the flatten command: merge
// folders globally, then rewrite the bookmark file as a single list of
// unique links with no folder structure.
package flatten

import (
	"bytes"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/arthur-debert/bmtidy/pkg/bookmarks"
	"github.com/arthur-debert/bmtidy/pkg/errors"
	"github.com/arthur-debert/bmtidy/pkg/fileops"
	"github.com/arthur-debert/bmtidy/pkg/logging"
	"github.com/arthur-debert/bmtidy/pkg/merge"
	"github.com/arthur-debert/bmtidy/pkg/netscape"
	"github.com/arthur-debert/bmtidy/pkg/paths"
)

// FlattenOptions holds options for the flatten command
type FlattenOptions struct {
	// InputPath is the bookmark file to flatten
	InputPath string

	// OutputPath overrides the derived output location
	OutputPath string

	// Suffix is inserted before the input extension when OutputPath is empty
	Suffix string

	// Title is written to the TITLE and H1 of the output document
	Title string

	// DryRun runs the pipeline but writes nothing
	DryRun bool
}

// Validate checks the options before the command runs.
func (o FlattenOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.InputPath, validation.Required),
		validation.Field(&o.Suffix, validation.Required.When(o.OutputPath == "")),
	)
}

// FlattenResult reports what the flatten command did
type FlattenResult struct {
	OutputPath     string
	LinksKept      int
	LinksRemoved   int
	FoldersMerged  int
	FoldersRemoved int
	DryRun         bool
}

// Flatten rewrites a bookmark file as one flat list of unique links.
//
// Folders are merged globally first, so the surviving copy of each
// duplicate link is the one a dedupe run would have kept.
func Flatten(opts FlattenOptions) (*FlattenResult, error) {
	logger := logging.GetLogger("commands.flatten")
	done := logging.LogOperationStart(logger, "flatten")
	defer done()

	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidArgs, "invalid flatten options")
	}

	data, err := fileops.ReadInput(opts.InputPath)
	if err != nil {
		return nil, err
	}

	root, err := netscape.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	mergeStats := merge.Folders(root, merge.ScopeGlobal)
	flatStats := merge.Flatten(root)

	var buf bytes.Buffer
	if err := netscape.Render(&buf, root, opts.Title); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render bookmarks")
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = paths.OutputPath(opts.InputPath, opts.Suffix)
	}

	writer := fileops.NewWriter(opts.DryRun)
	if err := writer.WriteFile(outputPath, buf.Bytes()); err != nil {
		return nil, err
	}

	result := &FlattenResult{
		OutputPath:     outputPath,
		LinksKept:      bookmarks.CountLinks(root),
		LinksRemoved:   mergeStats.LinksRemoved + flatStats.LinksRemoved,
		FoldersMerged:  mergeStats.FoldersMerged,
		FoldersRemoved: flatStats.FoldersRemoved,
		DryRun:         opts.DryRun,
	}

	logger.Info().
		Str("input", opts.InputPath).
		Str("output", outputPath).
		Int("linksKept", result.LinksKept).
		Int("linksRemoved", result.LinksRemoved).
		Int("foldersRemoved", result.FoldersRemoved).
		Bool("dryRun", opts.DryRun).
		Msg("Flatten finished")

	return result, nil
}
