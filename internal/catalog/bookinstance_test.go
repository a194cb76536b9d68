package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookInstance_DefaultsToMaintenance(t *testing.T) {
	svc, _ := newTestService(t)
	author := mustCreateAuthor(t, svc, "Patrick", "Rothfuss")
	book := mustCreateBook(t, svc, "The Name of the Wind", author)

	bi := mustCreateInstance(t, svc, book)

	assert.Equal(t, model.StatusMaintenance, bi.Status)
	require.NotNil(t, bi.DueBack)
	assert.WithinDuration(t, fixedNow.Add(LoanPeriod), *bi.DueBack, time.Second)
	assert.Equal(t, fixedNow, bi.CreationDate)
	require.Len(t, bi.History, 1)
	assert.Equal(t, model.StatusMaintenance, bi.History[0].Action)
	assert.Equal(t, "The Name of the Wind", bi.Book.Title)
}

func TestCreateBookInstance_DueBackRules(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	author := mustCreateAuthor(t, svc, "Patrick", "Rothfuss")
	book := mustCreateBook(t, svc, "The Name of the Wind", author)

	available := mustCreateInstance(t, svc, book,
		validation.FieldStatus, "Available",
		validation.FieldDueBack, "2024-06-30",
	)
	assert.Nil(t, available.DueBack)

	loaned := mustCreateInstance(t, svc, book,
		validation.FieldStatus, "Loaned",
		validation.FieldDueBack, "2024-06-30",
	)
	require.NotNil(t, loaned.DueBack)
	assert.Equal(t, "Jun 30, 2024", model.DueBackFormatted(*loaned))

	stored, err := svc.GetBookInstanceDetail(ctx, loaned.ID.String())
	require.NoError(t, err)
	require.NotNil(t, stored.DueBack)
	assert.WithinDuration(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), *stored.DueBack, time.Second)
	require.Len(t, stored.History, 1)
	assert.Equal(t, model.StatusLoaned, stored.History[0].Action)
}

func TestCreateBookInstance_UnknownBook(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateBookInstance(context.Background(), form(
		validation.FieldBook, "3f1f8b9e-5d0a-4a4e-9b1c-2f7d9e1a6c11",
		validation.FieldImprint, "Gollancz",
	))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Book does not exist."}, verr.For(validation.FieldBook))
}

func TestUpdateBookInstance_StatusAppendsHistory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	author := mustCreateAuthor(t, svc, "Patrick", "Rothfuss")
	book := mustCreateBook(t, svc, "The Name of the Wind", author)
	bi := mustCreateInstance(t, svc, book, validation.FieldStatus, "Loaned")

	later := fixedNow.Add(72 * time.Hour)
	svc.now = func() time.Time { return later }

	updated, err := svc.UpdateBookInstance(ctx, bi.ID.String(), form(
		validation.FieldBook, book.ID.String(),
		validation.FieldImprint, "Gollancz, 2014",
		validation.FieldStatus, "Available",
	))
	require.NoError(t, err)
	assert.Equal(t, model.StatusAvailable, updated.Status)
	assert.Nil(t, updated.DueBack)

	updated, err = svc.UpdateBookInstance(ctx, bi.ID.String(), form(
		validation.FieldBook, book.ID.String(),
		validation.FieldImprint, "Gollancz, 2014",
		validation.FieldStatus, "Reserved",
	))
	require.NoError(t, err)
	require.NotNil(t, updated.DueBack)
	assert.WithinDuration(t, later.Add(LoanPeriod), *updated.DueBack, time.Second)

	stored, err := svc.GetBookInstanceDetail(ctx, bi.ID.String())
	require.NoError(t, err)
	require.Len(t, stored.History, 3)
	assert.Equal(t, model.StatusLoaned, stored.History[0].Action)
	assert.Equal(t, model.StatusAvailable, stored.History[1].Action)
	assert.Equal(t, model.StatusReserved, stored.History[2].Action)
	assert.WithinDuration(t, fixedNow, stored.CreationDate, time.Second)
}

func TestUpdateBookInstance_WithoutStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	author := mustCreateAuthor(t, svc, "Patrick", "Rothfuss")
	book := mustCreateBook(t, svc, "The Name of the Wind", author)
	bi := mustCreateInstance(t, svc, book, validation.FieldStatus, "Loaned")

	updated, err := svc.UpdateBookInstance(ctx, bi.ID.String(), form(
		validation.FieldBook, book.ID.String(),
		validation.FieldImprint, "Gollancz, 2015",
		validation.FieldDueBack, "2024-07-15",
	))
	require.NoError(t, err)
	assert.Equal(t, model.StatusLoaned, updated.Status)
	assert.Equal(t, "Jul 15, 2024", model.DueBackFormatted(*updated))

	stored, err := svc.GetBookInstanceDetail(ctx, bi.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Gollancz, 2015", stored.Imprint)
	assert.Len(t, stored.History, 1)
}

func TestDeleteBookInstance(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	author := mustCreateAuthor(t, svc, "Patrick", "Rothfuss")
	book := mustCreateBook(t, svc, "The Name of the Wind", author)
	bi := mustCreateInstance(t, svc, book)

	require.NoError(t, svc.DeleteBookInstance(ctx, bi.ID.String()))

	var nf *NotFoundError
	require.ErrorAs(t, svc.DeleteBookInstance(ctx, bi.ID.String()), &nf)
	assert.Equal(t, "Shoot! Couldn't find that book instance.", nf.Message())
}
