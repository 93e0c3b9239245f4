package format_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/IKAMTeam/sql-formatter-1/pkg/format"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.in.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.in.sql files found in testdata directory")

	for _, inputFile := range matches {
		// "joins.in.sql" -> "joins.sql"
		outputName := strings.TrimSuffix(filepath.Base(inputFile), ".in.sql") + ".sql"

		t.Run(outputName, func(t *testing.T) {
			input, err := os.ReadFile(inputFile)
			require.NoError(t, err, "Failed to read input file %s", inputFile)

			golden.Assert(t, Format(string(input))+"\n", outputName)
		})
	}
}

func TestGoldenFiles_Stable(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.in.sql"))
	require.NoError(t, err)

	for _, inputFile := range matches {
		t.Run(filepath.Base(inputFile), func(t *testing.T) {
			input, err := os.ReadFile(inputFile)
			require.NoError(t, err)

			once := Format(string(input))
			require.Equal(t, once, Format(once))
		})
	}
}
