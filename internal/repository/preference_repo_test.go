package repository

import (
	"context"
	"testing"

	"go-wholesale-console/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPreferenceRepo_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPreferenceRepo()

	_, err := repo.FindByEmail(ctx, "asha@wholesale.test")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	require.NoError(t, repo.Upsert(ctx, &model.Preference{Email: "Asha@Wholesale.test ", Language: "hi", Theme: model.ThemeDark}))
	first, err := repo.FindByEmail(ctx, "asha@wholesale.test")
	require.NoError(t, err)
	assert.Equal(t, "hi", first.Language)
	assert.Equal(t, model.ThemeDark, first.Theme)

	require.NoError(t, repo.Upsert(ctx, &model.Preference{Email: "asha@wholesale.test", Language: "en", Theme: model.ThemeLight}))
	second, err := repo.FindByEmail(ctx, "ASHA@wholesale.test")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "en", second.Language)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestMemoryPreferenceRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPreferenceRepo()
	require.NoError(t, repo.Upsert(ctx, &model.Preference{Email: "a@b.co", Language: "en", Theme: model.ThemeLight}))
	require.NoError(t, repo.Upsert(ctx, &model.Preference{Email: "c@d.co", Language: "hi", Theme: model.ThemeDark}))

	require.NoError(t, repo.DeleteByEmail(ctx, "a@b.co"))
	assert.ErrorIs(t, repo.DeleteByEmail(ctx, "a@b.co"), ErrPreferenceNotFound)

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
