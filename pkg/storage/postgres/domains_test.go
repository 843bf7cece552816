package postgres_test

import (
	"context"
	"testing"

	"vdpscanner/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertDomains(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("empty input", func(t *testing.T) {
		n, err := pgSQL.UpsertDomains(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("insert then update", func(t *testing.T) {
		n, err := pgSQL.UpsertDomains(ctx,
			domain.DomainRecord{Domain: "B.GOV", Agency: "Agency B", SecurityContact: "(blank)"},
			domain.DomainRecord{Domain: "A.GOV", Agency: "Agency A", Organization: "Agency A", SecurityContact: "a@a.gov"},
		)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)

		n, err = pgSQL.UpsertDomains(ctx,
			domain.DomainRecord{Domain: "B.GOV", Agency: "Agency B2", Organization: "Org"},
		)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		records, err := pgSQL.Domains(ctx)
		require.NoError(t, err)
		require.Equal(t, []domain.DomainRecord{
			{Domain: "A.GOV", Agency: "Agency A", Organization: "Agency A", SecurityContact: "a@a.gov"},
			{Domain: "B.GOV", Agency: "Agency B2", Organization: "Org"},
		}, records)
	})

	t.Run("duplicates in one batch", func(t *testing.T) {
		_, err := pgSQL.UpsertDomains(ctx,
			domain.DomainRecord{Domain: "C.GOV", Agency: "first"},
			domain.DomainRecord{Domain: "C.GOV", Agency: "second"},
		)
		require.NoError(t, err)

		records, err := pgSQL.Domains(ctx)
		require.NoError(t, err)
		require.Len(t, records, 3)
		require.Equal(t, "second", records[2].Agency)
	})
}

func TestPgSQL_DeleteDomains(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pgSQL.UpsertDomains(ctx,
		domain.DomainRecord{Domain: "A.GOV", Agency: "A"},
		domain.DomainRecord{Domain: "B.GOV", Agency: "B"},
	)
	require.NoError(t, err)

	n, err := pgSQL.DeleteDomains(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = pgSQL.DeleteDomains(ctx, "A.GOV", "MISSING.GOV")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	records, err := pgSQL.Domains(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.DomainRecord{{Domain: "B.GOV", Agency: "B"}}, records)
}
