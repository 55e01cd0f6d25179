package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/porrinha/internal/argvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(t *testing.T, v *argvec.Vector) []string {
	t.Helper()
	var out []string
	for v.Size() > 0 {
		tok, err := v.Next()
		require.NoError(t, err)
		out = append(out, tok)
	}
	return out
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	src := `
chopsticks = 2
rounds     = 40

player "fixed" {
  args = [1, "2"]
}

player "mean" {}

player "random" {
  args = [7, true, 1.5]
}
`
	path := filepath.Join(t.TempDir(), "match.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))

	match, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, match.Chopsticks)
	assert.Equal(t, 2, *match.Chopsticks)
	require.NotNil(t, match.Rounds)
	assert.Equal(t, 40, *match.Rounds)

	require.Len(t, match.Players, 3)
	assert.Equal(t, "fixed", match.Players[0].ProgramName())
	if diff := cmp.Diff([]string{"1", "2"}, tokens(t, match.Players[0])); diff != "" {
		t.Fatalf("fixed args (-want +got):\n%s", diff)
	}
	assert.Equal(t, "mean", match.Players[1].ProgramName())
	assert.Equal(t, 0, match.Players[1].Size())
	assert.Equal(t, "random", match.Players[2].ProgramName())
	if diff := cmp.Diff([]string{"7", "true", "1.5"}, tokens(t, match.Players[2])); diff != "" {
		t.Fatalf("random args (-want +got):\n%s", diff)
	}
}

func TestLoad_OptionalSettings(t *testing.T) {
	t.Parallel()

	match, err := NewLoader().LoadBytes(context.Background(), []byte(`player "mean" {}`), "inline.hcl")
	require.NoError(t, err)
	assert.Nil(t, match.Chopsticks)
	assert.Nil(t, match.Rounds)
	assert.Len(t, match.Players, 1)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "syntax error",
			src:     `player "fixed" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown attribute",
			src:     `seats = 4`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "args not a list",
			src:     `player "fixed" { args = "1 2" }`,
			wantErr: "player 'fixed': args must be a list, got string",
		},
		{
			name:    "nested list",
			src:     `player "fixed" { args = [1, [2]] }`,
			wantErr: "player 'fixed': args[1]",
		},
		{
			name:    "null element",
			src:     `player "fixed" { args = [null] }`,
			wantErr: "args[0] must not be null",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLoader().LoadBytes(context.Background(), []byte(tc.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.ErrorContains(t, err, "failed to parse HCL file")
}
