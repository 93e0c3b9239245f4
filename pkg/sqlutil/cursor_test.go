package sqlutil_test

import (
	"testing"

	. "github.com/IKAMTeam/sql-formatter-1/pkg/sqlutil"
	"github.com/stretchr/testify/require"
)

func TestCursor_Locate(t *testing.T) {
	src := "SELECT a\n  FROM   Some_Table\nWHERE x = 'A'"

	t.Run("recovers original casing and spacing", func(t *testing.T) {
		cur := NewCursor(src)

		m, ok := cur.Locate(Flatten("from some_table"))
		require.True(t, ok)
		require.Equal(t, "FROM   Some_Table", m.Text)
		require.Equal(t, 2, m.Indent)
		require.Equal(t, "\nWHERE x = 'A'", cur.Remaining())
	})

	t.Run("spans source lines", func(t *testing.T) {
		cur := NewCursor(src)

		m, ok := cur.Locate(Flatten("a from some_table where"))
		require.True(t, ok)
		require.Equal(t, "a\n  FROM   Some_Table\nWHERE", m.Text)
		require.Equal(t, 7, m.Indent)
	})

	t.Run("not found", func(t *testing.T) {
		cur := NewCursor(src)

		_, ok := cur.Locate(Flatten("group by"))
		require.False(t, ok)
		require.Equal(t, src, cur.Remaining(), "a failed lookup must not move the cursor")
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := NewCursor(src).Locate("")
		require.False(t, ok)
	})

	t.Run("consumption is monotonic", func(t *testing.T) {
		cur := NewCursor("x = 1\n  X = 1")

		first, ok := cur.Locate("x=1")
		require.True(t, ok)
		require.Equal(t, "x = 1", first.Text)
		require.Equal(t, 0, first.Indent)

		second, ok := cur.Locate("x=1")
		require.True(t, ok)
		require.Equal(t, "X = 1", second.Text)
		require.Equal(t, 2, second.Indent)

		_, ok = cur.Locate("x=1")
		require.False(t, ok)
	})

	t.Run("multibyte text", func(t *testing.T) {
		cur := NewCursor("select 'Ärger' from dual")

		m, ok := cur.Locate(Flatten("'ärger' FROM"))
		require.True(t, ok)
		require.Equal(t, "'Ärger' from", m.Text)
		require.Equal(t, 7, m.Indent)
	})
}

func TestCursor_OnOwnLine(t *testing.T) {
	src := "select a -- inline\n  -- own line\nfrom t /* c */\n/* c */"
	cur := NewCursor(src)

	require.False(t, cur.OnOwnLine("-- inline"))
	require.True(t, cur.OnOwnLine("-- own line"))
	require.False(t, cur.OnOwnLine("/* c */"), "first occurrence is inline")
	require.True(t, cur.OnOwnLine("/* c */"), "second occurrence starts its line")
	require.False(t, cur.OnOwnLine("/* missing */"))
	require.False(t, cur.OnOwnLine("  "))
}
