package blogs

import (
	"context"
	"testing"

	"github.com/sogcms/content-api/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestService_CreateAppliesDefaults(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	b, err := svc.Create(ctx, &CreateSchema{Title: "first post", Summary: "s", Content: "c"})
	require.NoError(t, err)
	require.False(t, b.Published)
	require.Equal(t, "", b.Category)
	require.True(t, b.CreatedAt.Equal(b.UpdatedAt))
}

func TestService_CreateKeepsExplicitValues(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	published := true
	category := "golang"
	b, err := svc.Create(ctx, &CreateSchema{
		Title:     "second post",
		Summary:   "s",
		Content:   "c",
		Category:  &category,
		Published: &published,
	})
	require.NoError(t, err)
	require.True(t, b.Published)
	require.Equal(t, "golang", b.Category)
}

func TestService_DuplicateTitle(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateSchema{Title: "same", Summary: "s", Content: "c"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &CreateSchema{Title: "same", Summary: "other", Content: "other"})
	var dup *repository.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, KeyField, dup.Key)
}

func TestService_PartialUpdate(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	b, err := svc.Create(ctx, &CreateSchema{Title: "post", Summary: "old", Content: "c"})
	require.NoError(t, err)

	published := true
	updated, err := svc.Update(ctx, b.ID, &UpdateSchema{Published: &published})
	require.NoError(t, err)
	require.True(t, updated.Published)
	require.Equal(t, "old", updated.Summary)
	require.Equal(t, "post", updated.Title)

	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestService_ListPagination(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	for _, title := range []string{"p1", "p2", "p3"} {
		_, err := svc.Create(ctx, &CreateSchema{Title: title, Summary: "s", Content: "c"})
		require.NoError(t, err)
	}

	page1, err := svc.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page1, 2)

	page2, err := svc.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	require.NotContains(t, []string{page1[0].Title, page1[1].Title}, page2[0].Title)
}
