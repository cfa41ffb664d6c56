package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Tidy up Netscape bookmark files"
	MsgDedupeShort    = "Remove duplicate links and merge same-named folders"
	MsgFlattenShort   = "Collect every link into a single folder"
	MsgGenConfigShort = "Generate a default configuration file"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"
	MsgTopicsShort    = "Display available documentation topics"
	MsgTopicsLong     = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Result messages
	MsgWroteFormat       = "%s Wrote %s\n"
	MsgWouldWriteFormat  = "Would write %s\n"
	MsgDryRunNotice      = "DRY RUN MODE - No file was written"
	MsgCountFormat       = "  %-19s %v\n"
	MsgOperationItem     = "  ✓ %s\n"
	MsgConfigExistsFmt   = "Config file already exists at %s, not overwriting\n"
	MsgLabelLinksKept    = "Links kept:"
	MsgLabelLinksDropped = "Duplicates removed:"
	MsgLabelFoldersMerge = "Folders merged:"
	MsgLabelFoldersGone  = "Folders removed:"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Transform the file but write nothing"
	MsgFlagScope   = "Folder merge scope: sibling or global"
	MsgFlagOutput  = "Output path (default: input name with the mode suffix)"
	MsgFlagWrite   = "Write the configuration to the user config file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/dedupe-long.txt
	msgDedupeLongRaw string
	MsgDedupeLong    = strings.TrimSpace(msgDedupeLongRaw)

	//go:embed msgs/dedupe-example.txt
	msgDedupeExampleRaw string
	MsgDedupeExample    = strings.TrimRight(msgDedupeExampleRaw, "\n")

	//go:embed msgs/flatten-long.txt
	msgFlattenLongRaw string
	MsgFlattenLong    = strings.TrimSpace(msgFlattenLongRaw)

	//go:embed msgs/flatten-example.txt
	msgFlattenExampleRaw string
	MsgFlattenExample    = strings.TrimRight(msgFlattenExampleRaw, "\n")

	//go:embed msgs/gen-config-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/gen-config-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
