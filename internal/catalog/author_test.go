package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/snnyvrz/locallibrary/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAuthor_StoresDates(t *testing.T) {
	svc, _ := newTestService(t)

	a, err := svc.CreateAuthor(context.Background(), form(
		validation.FieldFirstName, "Isaac",
		validation.FieldFamilyName, "Asimov",
		validation.FieldDateOfBirth, "1920-01-02",
		validation.FieldDateOfDeath, "1992-04-06",
	))
	require.NoError(t, err)

	require.NotNil(t, a.DateOfBirth)
	assert.Equal(t, time.Date(1920, 1, 2, 0, 0, 0, 0, time.UTC), *a.DateOfBirth)

	detail, err := svc.GetAuthorDetail(context.Background(), a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Asimov", detail.Author.FamilyName)
	assert.Empty(t, detail.Books)
}

func TestCreateAuthor_ValidationFailure(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.CreateAuthor(context.Background(), form(
		validation.FieldFamilyName, "Asimov!",
	))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"First name must be specified."}, verr.For(validation.FieldFirstName))
	assert.Len(t, verr.For(validation.FieldFamilyName), 1)

	n, err := store.Authors.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdateAuthor(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	a := mustCreateAuthor(t, svc, "Patrick", "Rothfus")

	updated, err := svc.UpdateAuthor(ctx, a.ID.String(), form(
		validation.FieldFirstName, "Patrick",
		validation.FieldFamilyName, "Rothfuss",
		validation.FieldDateOfBirth, "1973-06-06",
	))
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)

	detail, err := svc.GetAuthorDetail(ctx, a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Rothfuss", detail.Author.FamilyName)
	require.NotNil(t, detail.Author.DateOfBirth)
}

func TestUpdateAuthor_Missing(t *testing.T) {
	svc, _ := newTestService(t)
	valid := form(validation.FieldFirstName, "A", validation.FieldFamilyName, "B")

	for _, id := range []string{"not-an-id", "3f1f8b9e-5d0a-4a4e-9b1c-2f7d9e1a6c11"} {
		_, err := svc.UpdateAuthor(context.Background(), id, valid)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf, "id %q", id)
		assert.Equal(t, EntityAuthor, nf.Entity)
	}
}

func TestDeleteAuthor_BlockedByBooks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	a := mustCreateAuthor(t, svc, "Patrick", "Rothfuss")
	mustCreateBook(t, svc, "The Name of the Wind", a)

	for i := 0; i < 2; i++ {
		err := svc.DeleteAuthor(ctx, a.ID.String())
		var dep *DependencyError
		require.ErrorAs(t, err, &dep)
		assert.EqualValues(t, 1, dep.Count)
		assert.Equal(t, "Delete the author's books before deleting the author.", dep.Message())
	}

	_, err := svc.GetAuthorDetail(ctx, a.ID.String())
	require.NoError(t, err)
}

func TestDeleteAuthor(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	a := mustCreateAuthor(t, svc, "Jim", "Jones")

	require.NoError(t, svc.DeleteAuthor(ctx, a.ID.String()))

	var nf *NotFoundError
	require.ErrorAs(t, svc.DeleteAuthor(ctx, a.ID.String()), &nf)
	require.ErrorAs(t, svc.DeleteAuthor(ctx, "not-an-id"), &nf)
}
