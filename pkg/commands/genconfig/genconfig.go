// Package genconfig implements the gen-config command.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/bmtidy/pkg/config"
	"github.com/arthur-debert/bmtidy/pkg/errors"
	"github.com/arthur-debert/bmtidy/pkg/fileops"
	"github.com/arthur-debert/bmtidy/pkg/logging"
	"github.com/arthur-debert/bmtidy/pkg/paths"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Write saves the generated config instead of printing it
	Write bool
	// DryRun reports what would be written without writing it
	DryRun bool
}

// GenConfigResult reports the generated content and any file written
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
	// Skipped is set when the config file already exists
	Skipped bool
	DryRun  bool
}

// GenConfig outputs or writes a starter configuration file with every
// value commented out.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		FilesWritten:  []string{},
		DryRun:        opts.DryRun,
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	target := paths.DefaultConfigFile()

	// Never clobber an existing config
	if _, err := os.Stat(target); err == nil {
		logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
		result.Skipped = true
		return result, nil
	}

	if !opts.DryRun {
		dir := filepath.Dir(target)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrOutputWrite,
				"failed to create config directory %s", dir)
		}
	}

	writer := fileops.NewWriter(opts.DryRun)
	if err := writer.WriteFile(target, []byte(result.ConfigContent)); err != nil {
		return nil, err
	}

	if opts.DryRun {
		return result, nil
	}

	logger.Info().Str("path", target).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, target)

	return result, nil
}
