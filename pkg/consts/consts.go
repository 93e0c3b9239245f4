package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the project configuration file looked up in the working directory
	DefaultConfigFile = "sqlfmt.yaml"

	// StdinPath is the path argument that makes the fmt command read standard input
	StdinPath = "-"
)

// DefaultExtensions lists the file extensions formatted when walking a directory.
var DefaultExtensions = []string{".sql", ".pls", ".pks", ".pkb"}
