package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arthur-debert/bmtidy/pkg/commands/dedupe"
	"github.com/arthur-debert/bmtidy/pkg/commands/flatten"
	"github.com/arthur-debert/bmtidy/pkg/commands/genconfig"
	"github.com/arthur-debert/bmtidy/pkg/errors"
	"github.com/arthur-debert/bmtidy/pkg/paths"
	"github.com/arthur-debert/bmtidy/pkg/style"
)

// styled reports whether out should receive colored output.
func styled(out *os.File) bool {
	return style.DetectFormat(out) == style.FormatTerminal
}

// printOutputLine prints where the result went, or would have gone.
func printOutputLine(path string, dryRun bool) {
	display := path
	if styled(os.Stdout) {
		display = style.PathStyle.Render(path)
	}

	if dryRun {
		fmt.Println(MsgDryRunNotice)
		fmt.Printf(MsgWouldWriteFormat, display)
		return
	}

	indicator := "✓"
	if styled(os.Stdout) {
		indicator = style.SuccessIndicator
	}
	fmt.Printf(MsgWroteFormat, indicator, display)
}

func printCount(label string, value int) {
	if styled(os.Stdout) {
		fmt.Printf(MsgCountFormat, label, style.CountStyle.Render(strconv.Itoa(value)))
		return
	}
	fmt.Printf(MsgCountFormat, label, value)
}

func printDedupeResult(result *dedupe.DedupeResult) {
	printOutputLine(result.OutputPath, result.DryRun)
	fmt.Println()
	printCount(MsgLabelLinksKept, result.LinksKept)
	printCount(MsgLabelLinksDropped, result.LinksRemoved)
	printCount(MsgLabelFoldersMerge, result.FoldersMerged)
}

func printFlattenResult(result *flatten.FlattenResult) {
	printOutputLine(result.OutputPath, result.DryRun)
	fmt.Println()
	printCount(MsgLabelLinksKept, result.LinksKept)
	printCount(MsgLabelLinksDropped, result.LinksRemoved)
	printCount(MsgLabelFoldersMerge, result.FoldersMerged)
	printCount(MsgLabelFoldersGone, result.FoldersRemoved)
}

func printGenConfigResult(result *genconfig.GenConfigResult, write bool) {
	if !write {
		fmt.Print(result.ConfigContent)
		return
	}

	if result.Skipped {
		fmt.Printf(MsgConfigExistsFmt, paths.DefaultConfigFile())
		return
	}

	if result.DryRun {
		printOutputLine(paths.DefaultConfigFile(), true)
		return
	}

	for _, file := range result.FilesWritten {
		fmt.Printf(MsgOperationItem, file)
	}
}

// printError reports a failure on stderr.
func printError(err error) {
	if styled(os.Stderr) {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorIndicator, err)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// exitCode maps an error to the process exit status. Argument errors get
// a distinct status so scripts can tell usage mistakes from run failures.
func exitCode(err error) int {
	if errors.IsErrorCode(err, errors.ErrInvalidArgs) {
		return 2
	}
	return 1
}
