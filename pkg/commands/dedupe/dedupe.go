// Package dedupe implements the core of the dedupe command: parse a
// bookmark file, merge same-named folders, drop duplicate links and write
// the cleaned file next to the input.
package dedupe

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

// DedupeOptions holds options for the dedupe command
type DedupeOptions struct {
	// InputPath is the bookmark file to clean up
	InputPath string

	// OutputPath overrides the derived output location
	OutputPath string

	// Scope selects sibling or global folder merging
	Scope string

	// Suffix is inserted before the input extension when OutputPath is empty
	Suffix string

	// Title is written to the TITLE and H1 of the output document
	Title string

	// DryRun runs the pipeline but writes nothing
	DryRun bool
}

// Validate checks the options before the command runs.
func (o DedupeOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.InputPath, validation.Required),
		validation.Field(&o.Scope, validation.Required, validation.By(checkScope)),
		validation.Field(&o.Suffix, validation.Required.When(o.OutputPath == "")),
	)
}

func checkScope(value interface{}) error {
	s, _ := value.(string)
	_, err := merge.ParseScope(s)
	return err
}

// DedupeResult reports what the dedupe command did
type DedupeResult struct {
	OutputPath    string
	Scope         merge.Scope
	LinksKept     int
	LinksRemoved  int
	FoldersMerged int
	DryRun        bool
}

// Dedupe cleans up a bookmark file and writes the result
func Dedupe(opts DedupeOptions) (*DedupeResult, error) {
	logger := logging.GetLogger("commands.dedupe")
	done := logging.LogOperationStart(logger, "dedupe")
	defer done()

	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidArgs, "invalid dedupe options")
	}

	scope, err := merge.ParseScope(opts.Scope)
	if err != nil {
		return nil, err
	}

	data, err := fileops.ReadInput(opts.InputPath)
	if err != nil {
		return nil, err
	}

	root, err := netscape.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	stats := merge.Folders(root, scope)

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

	result := &DedupeResult{
		OutputPath:    outputPath,
		Scope:         scope,
		LinksKept:     bookmarks.CountLinks(root),
		LinksRemoved:  stats.LinksRemoved,
		FoldersMerged: stats.FoldersMerged,
		DryRun:        opts.DryRun,
	}

	logger.Info().
		Str("input", opts.InputPath).
		Str("output", outputPath).
		Str("scope", scope.String()).
		Int("linksKept", result.LinksKept).
		Int("linksRemoved", result.LinksRemoved).
		Int("foldersMerged", result.FoldersMerged).
		Bool("dryRun", opts.DryRun).
		Msg("Dedupe finished")

	return result, nil
}
