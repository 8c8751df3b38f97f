package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachhub/catalog/internal/testutil"
)

func TestMemoryStore_CreditPackageLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	pkg := testutil.NewTestCreditPackage(t, "Gold")
	require.NoError(t, store.CreateCreditPackage(ctx, pkg))
	assert.False(t, pkg.CreatedAt.IsZero())

	found, err := store.FindCreditPackagesByName(ctx, "Gold")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, pkg.ID, found[0].ID)

	listed, err := store.ListCreditPackages(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].CreatedAt.IsZero(), "listing is projected")

	dup := testutil.NewTestCreditPackage(t, "Gold")
	assert.ErrorIs(t, store.CreateCreditPackage(ctx, dup), ErrDuplicateName)

	n, err := store.DeleteCreditPackage(ctx, pkg.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = store.DeleteCreditPackage(ctx, pkg.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestMemoryStore_SkillLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	skill := testutil.NewTestSkill(t, "Yoga")
	require.NoError(t, store.CreateSkill(ctx, skill))

	listed, err := store.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Yoga", listed[0].Name)

	assert.ErrorIs(t, store.CreateSkill(ctx, testutil.NewTestSkill(t, "Yoga")), ErrDuplicateName)

	n, err := store.DeleteSkill(ctx, skill.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestMemoryStore_DeleteNormalizesID(t *testing.T) {
	ctx := context.Background()
	forms := map[string]func(string) string{
		"upper":  strings.ToUpper,
		"braced": func(id string) string { return "{" + id + "}" },
		"urn":    func(id string) string { return "urn:uuid:" + id },
	}

	for name, form := range forms {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStore()

			pkg := testutil.NewTestCreditPackage(t, "Gold")
			require.NoError(t, store.CreateCreditPackage(ctx, pkg))
			n, err := store.DeleteCreditPackage(ctx, form(pkg.ID))
			require.NoError(t, err)
			assert.EqualValues(t, 1, n)

			skill := testutil.NewTestSkill(t, "Yoga")
			require.NoError(t, store.CreateSkill(ctx, skill))
			n, err = store.DeleteSkill(ctx, form(skill.ID))
			require.NoError(t, err)
			assert.EqualValues(t, 1, n)
		})
	}
}

func TestMemoryStore_MalformedID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.DeleteCreditPackage(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = store.DeleteSkill(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestMemoryStore_InjectedError(t *testing.T) {
	store := NewMemoryStore()
	store.Err = errors.New("connection refused")

	_, err := store.ListSkills(context.Background())
	assert.Error(t, err)
	assert.Error(t, store.Ping(context.Background()))
}
