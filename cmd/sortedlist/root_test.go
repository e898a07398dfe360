package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/amp-labs/sortedlist/sortable"
	"github.com/amp-labs/sortedlist/sortedlist"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newApp(slogt.New(t)).command()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	return out.String(), err
}

func TestCommand_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "sorts ints", args: []string{"3", "1", "2"}, expected: "[1, 2, 3]\n"},
		{name: "keeps duplicates", args: []string{"10", "5", "10"}, expected: "[5, 10, 10]\n"},
		{name: "removes first match", args: []string{"--remove", "2", "1", "2", "3", "2"}, expected: "[1, 2, 3]\n"},
		{name: "repeated remove", args: []string{"--remove", "1", "--remove", "3", "1", "2", "3"}, expected: "[2]\n"},
		{name: "remove missing value", args: []string{"--remove", "9", "1"}, expected: "[1]\n"},
		{name: "strings", args: []string{"--type", "string", "banana", "apple", "cherry"}, expected: "[apple, banana, cherry]\n"},
		{name: "natural strings", args: []string{"--type", "natural", "f10", "f2", "f1"}, expected: "[f1, f2, f10]\n"},
		{name: "floats", args: []string{"--type", "float", "--", "2.5", "-1", "0.5"}, expected: "[-1, 0.5, 2.5]\n"},
		{name: "first", args: []string{"--first", "3", "1", "2"}, expected: "1\n"},
		{name: "last", args: []string{"--last", "3", "1", "2"}, expected: "3\n"},
		{name: "get", args: []string{"--get", "1", "3", "1", "2"}, expected: "2\n"},
		{name: "get zero", args: []string{"--get", "0", "3", "1"}, expected: "1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCommand_Stdin(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "3\n\n 1 \n2\n")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestCommand_EmptyInput(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestCommand_JSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "--format", "json", "3", "1", "2")
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, 3]`, out)

	decoded := sortedlist.New[sortable.Int]()
	require.NoError(t, json.Unmarshal([]byte(out), decoded))
	assert.Equal(t, 3, decoded.Size())
}

func TestCommand_YAML(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "--format", "yaml", "--type", "string", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", out)
}

func TestCommand_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{name: "bad int", args: []string{"1", "two"}, target: errInvalidValue},
		{name: "bad remove value", args: []string{"--remove", "x", "1"}, target: errInvalidValue},
		{name: "unknown type", args: []string{"--type", "uuid", "1"}, target: errUnknownType},
		{name: "unknown format", args: []string{"--format", "xml", "1"}, target: errUnknownFormat},
		{name: "get out of range", args: []string{"--get", "1", "1"}, target: sortedlist.ErrIndexOutOfRange},
		{name: "negative get", args: []string{"--get", "-1", "1"}, target: sortedlist.ErrIndexOutOfRange},
		{name: "first of empty", args: []string{"--first", "--type", "string"}, target: sortedlist.ErrEmpty},
		{name: "last of empty", args: []string{"--last"}, target: sortedlist.ErrEmpty},
		{name: "conflicting selectors", args: []string{"--first", "--last", "1"}, target: errConflicting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "", tt.args...)
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestCommand_OutOfRangeMessage(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "--get", "1", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Index: 1, Size: 1")
}

func TestCommand_Environment(t *testing.T) { //nolint:paralleltest
	t.Setenv("SORTEDLIST_TYPE", "natural")
	t.Setenv("SORTEDLIST_FORMAT", "json")

	out, err := execute(t, "", "v10", "v9")
	require.NoError(t, err)
	assert.JSONEq(t, `["v9", "v10"]`, out)

	out, err = execute(t, "", "--format", "text", "v10", "v9")
	require.NoError(t, err)
	assert.Equal(t, "[v9, v10]\n", out)
}

func TestReadValues(t *testing.T) {
	t.Parallel()

	values, err := readValues(strings.NewReader("  a \n\n b\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, values)
}
