package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"vdpscanner/internal/source"
	"vdpscanner/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestLocal_Domains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current-federal.csv")
	require.NoError(t, os.WriteFile(path, []byte(dotgovCSV), 0o600))

	records, err := source.Local{Path: path}.Domains(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
}

func TestLocal_Domains_MissingFile(t *testing.T) {
	_, err := source.Local{Path: filepath.Join(t.TempDir(), "nope.csv")}.Domains(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestLocal_Domains_Unreadable(t *testing.T) {
	_, err := source.Local{Path: t.TempDir()}.Domains(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
}
