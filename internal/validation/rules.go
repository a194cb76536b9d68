package validation

import (
	"errors"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/model"
)

// Form field names.
const (
	FieldFirstName   = "firstName"
	FieldFamilyName  = "familyName"
	FieldDateOfBirth = "dateOfBirth"
	FieldDateOfDeath = "dateOfDeath"

	FieldName = "name"

	FieldTitle   = "title"
	FieldAuthor  = "author"
	FieldSummary = "summary"
	FieldISBN    = "isbn"
	FieldGenres  = "genres"

	FieldBook    = "book"
	FieldImprint = "imprint"
	FieldStatus  = "status"
	FieldDueBack = "dueBack"
)

const (
	maxAuthorNameLength = 100
	minGenreNameLength  = 3
	maxGenreNameLength  = 100
)

type AuthorInput struct {
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

type GenreInput struct {
	Name string
}

type BookInput struct {
	Title    string
	AuthorID uuid.UUID
	Summary  string
	ISBN     string
	GenreIDs []uuid.UUID
}

// BookInstanceInput carries StatusSet so updates can tell "keep the current
// status" apart from an explicit choice.
type BookInstanceInput struct {
	BookID    uuid.UUID
	Imprint   string
	Status    model.Status
	StatusSet bool
	DueBack   *time.Time
}

// collector runs each field's rules in order, keeps the first failure per
// field and accumulates failures across fields.
type collector struct {
	errs []FieldError
}

func (c *collector) check(field, value string, rules ...ozzo.Rule) bool {
	err := ozzo.Validate(value, rules...)
	if err == nil {
		return true
	}

	fe := FieldError{Field: field, Rule: "invalid", Message: err.Error()}
	var oe ozzo.Error
	if errors.As(err, &oe) {
		fe.Rule = strings.TrimPrefix(oe.Code(), "validation_")
	}
	c.errs = append(c.errs, fe)
	return false
}

func (c *collector) add(field, rule, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Rule: rule, Message: message})
}

func (c *collector) date(field, value, message string) *time.Time {
	if !c.check(field, value, ozzo.Date(model.DateLayout).Error(message)) || value == "" {
		return nil
	}

	t, err := model.ParseDate(value)
	if err != nil {
		c.add(field, "date_invalid", message)
		return nil
	}
	return &t
}

func (c *collector) id(field, value string, rules ...ozzo.Rule) uuid.UUID {
	if !c.check(field, value, rules...) {
		return uuid.Nil
	}
	id, _ := uuid.Parse(value)
	return id
}

// identifier accepts the empty string so it composes with Required.
func identifier(message string) ozzo.Rule {
	return ozzo.By(func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := uuid.Parse(s); err != nil {
			return ozzo.NewError("validation_identifier", message)
		}
		return nil
	})
}

func ValidateAuthor(f Form) (AuthorInput, []FieldError) {
	var c collector
	in := AuthorInput{
		FirstName:  f.Value(FieldFirstName),
		FamilyName: f.Value(FieldFamilyName),
	}

	c.check(FieldFirstName, in.FirstName,
		ozzo.Required.Error("First name must be specified."),
		ozzo.RuneLength(0, maxAuthorNameLength).Error("First name must be at most 100 characters."),
		is.Alphanumeric.Error("First name has non-alphanumeric characters."),
	)
	c.check(FieldFamilyName, in.FamilyName,
		ozzo.Required.Error("Family name must be specified."),
		ozzo.RuneLength(0, maxAuthorNameLength).Error("Family name must be at most 100 characters."),
		is.Alphanumeric.Error("Family name has non-alphanumeric characters."),
	)

	in.DateOfBirth = c.date(FieldDateOfBirth, f.Value(FieldDateOfBirth), "Invalid date of birth.")
	in.DateOfDeath = c.date(FieldDateOfDeath, f.Value(FieldDateOfDeath), "Invalid date of death.")

	if in.DateOfBirth != nil && in.DateOfDeath != nil && in.DateOfDeath.Before(*in.DateOfBirth) {
		c.add(FieldDateOfDeath, "before_birth", "Date of death must not precede date of birth.")
	}

	return in, c.errs
}

func ValidateGenre(f Form) (GenreInput, []FieldError) {
	var c collector
	in := GenreInput{Name: f.Value(FieldName)}

	c.check(FieldName, in.Name,
		ozzo.Required.Error("Genre name must be specified."),
		ozzo.RuneLength(minGenreNameLength, maxGenreNameLength).Error("Genre name must be between 3 and 100 characters."),
	)

	return in, c.errs
}

func ValidateBook(f Form) (BookInput, []FieldError) {
	var c collector
	in := BookInput{
		Title:    f.Value(FieldTitle),
		Summary:  f.Value(FieldSummary),
		ISBN:     f.Value(FieldISBN),
		GenreIDs: []uuid.UUID{},
	}

	c.check(FieldTitle, in.Title, ozzo.Required.Error("Title must not be empty."))
	in.AuthorID = c.id(FieldAuthor, f.Value(FieldAuthor),
		ozzo.Required.Error("Author must not be empty."),
		identifier("Author must be a valid identifier."),
	)
	c.check(FieldSummary, in.Summary, ozzo.Required.Error("Summary must not be empty."))
	c.check(FieldISBN, in.ISBN,
		ozzo.Required.Error("ISBN must not be empty."),
		is.Alphanumeric.Error("ISBN has non-alphanumeric characters."),
	)

	seen := make(map[uuid.UUID]bool)
	for _, raw := range f.Values(FieldGenres) {
		id := c.id(FieldGenres, raw, identifier("Genre must be a valid identifier."))
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		in.GenreIDs = append(in.GenreIDs, id)
	}

	return in, c.errs
}

// knownStatus accepts the empty string so an omitted status keeps the
// current one.
func knownStatus(message string) ozzo.Rule {
	return ozzo.By(func(value any) error {
		s, _ := value.(string)
		if s == "" || model.Status(s).Valid() {
			return nil
		}
		return ozzo.NewError("validation_in_invalid", message)
	})
}

func ValidateBookInstance(f Form) (BookInstanceInput, []FieldError) {
	var c collector
	in := BookInstanceInput{
		Imprint:   f.Value(FieldImprint),
		StatusSet: f.Has(FieldStatus),
	}

	in.BookID = c.id(FieldBook, f.Value(FieldBook),
		ozzo.Required.Error("Book must be specified."),
		identifier("Book must be a valid identifier."),
	)
	c.check(FieldImprint, in.Imprint, ozzo.Required.Error("Imprint must be specified."))

	status := f.Value(FieldStatus)
	if c.check(FieldStatus, status,
		knownStatus("Status must be one of Available, Maintenance, Loaned or Reserved."),
	) {
		in.Status = model.Status(status)
	}

	in.DueBack = c.date(FieldDueBack, f.Value(FieldDueBack), "Invalid due date.")

	return in, c.errs
}
