package handler

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

// StringList accepts either a single JSON string or an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	if strings.TrimSpace(string(b)) == "null" {
		*l = nil
		return nil
	}

	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*l = StringList{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

type AuthorRequest struct {
	FirstName   string `json:"firstName" example:"Patrick"`
	FamilyName  string `json:"familyName" example:"Rothfuss"`
	DateOfBirth string `json:"dateOfBirth,omitempty" example:"1973-06-06"`
	DateOfDeath string `json:"dateOfDeath,omitempty" example:""`
}

func (r AuthorRequest) form() validation.Form {
	return validation.Form{
		validation.FieldFirstName:   {r.FirstName},
		validation.FieldFamilyName:  {r.FamilyName},
		validation.FieldDateOfBirth: {r.DateOfBirth},
		validation.FieldDateOfDeath: {r.DateOfDeath},
	}
}

type GenreRequest struct {
	Name string `json:"name" example:"Fantasy"`
}

func (r GenreRequest) form() validation.Form {
	return validation.Form{validation.FieldName: {r.Name}}
}

type BookRequest struct {
	Title   string     `json:"title" example:"The Name of the Wind"`
	Author  string     `json:"author" example:"3f1f8b9e-5d0a-4a4e-9b1c-2f7d9e1a6c11"`
	Summary string     `json:"summary"`
	ISBN    string     `json:"isbn" example:"9781473211896"`
	Genres  StringList `json:"genres" swaggertype:"array,string"`
}

func (r BookRequest) form() validation.Form {
	return validation.Form{
		validation.FieldTitle:   {r.Title},
		validation.FieldAuthor:  {r.Author},
		validation.FieldSummary: {r.Summary},
		validation.FieldISBN:    {r.ISBN},
		validation.FieldGenres:  r.Genres,
	}
}

// BookInstanceRequest leaves status empty to keep the current status on
// update, or to start in Maintenance on create.
type BookInstanceRequest struct {
	Book    string `json:"book" example:"3f1f8b9e-5d0a-4a4e-9b1c-2f7d9e1a6c11"`
	Imprint string `json:"imprint" example:"Gollancz, 2014"`
	Status  string `json:"status,omitempty" enums:"Available,Maintenance,Loaned,Reserved"`
	DueBack string `json:"dueBack,omitempty" example:"2024-06-30"`
}

func (r BookInstanceRequest) form() validation.Form {
	return validation.Form{
		validation.FieldBook:    {r.Book},
		validation.FieldImprint: {r.Imprint},
		validation.FieldStatus:  {r.Status},
		validation.FieldDueBack: {r.DueBack},
	}
}

type AuthorResponse struct {
	ID          uuid.UUID   `json:"id"`
	FirstName   string      `json:"firstName"`
	FamilyName  string      `json:"familyName"`
	DateOfBirth *model.Date `json:"dateOfBirth" swaggertype:"string" example:"1973-06-06"`
	DateOfDeath *model.Date `json:"dateOfDeath" swaggertype:"string" example:""`
	Name        string      `json:"name" example:"Rothfuss, Patrick"`
	Lifespan    string      `json:"lifespan"`
	AgeAtDeath  *int        `json:"ageAtDeath,omitempty"`
	URL         string      `json:"url"`
}

type AuthorSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

type GenreResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

type BookSummary struct {
	ID      uuid.UUID      `json:"id"`
	Title   string         `json:"title"`
	Summary string         `json:"summary,omitempty"`
	Author  *AuthorSummary `json:"author,omitempty"`
	URL     string         `json:"url"`
}

type BookResponse struct {
	ID      uuid.UUID       `json:"id"`
	Title   string          `json:"title"`
	Author  AuthorSummary   `json:"author"`
	Summary string          `json:"summary"`
	ISBN    string          `json:"isbn"`
	Genres  []GenreResponse `json:"genres"`
	URL     string          `json:"url"`
}

type HistoryEntryResponse struct {
	Action model.Status `json:"action"`
	Time   time.Time    `json:"time"`
}

type BookInstanceResponse struct {
	ID               uuid.UUID              `json:"id"`
	Book             *BookSummary           `json:"book,omitempty"`
	Imprint          string                 `json:"imprint"`
	Status           model.Status           `json:"status"`
	DueBack          *model.Date            `json:"dueBack" swaggertype:"string" example:"2024-06-30"`
	DueBackFormatted string                 `json:"dueBackFormatted"`
	CreationDate     time.Time              `json:"creationDate"`
	History          []HistoryEntryResponse `json:"history,omitempty"`
	URL              string                 `json:"url"`
}

type AuthorDetailResponse struct {
	Author AuthorResponse `json:"author"`
	Books  []BookSummary  `json:"books"`
}

type GenreDetailResponse struct {
	Genre GenreResponse `json:"genre"`
	Books []BookSummary `json:"books"`
}

type BookDetailResponse struct {
	Book      BookResponse           `json:"book"`
	Instances []BookInstanceResponse `json:"instances"`
}

type DeleteGenreResponse struct {
	BooksUpdated int64 `json:"booksUpdated"`
}

func toAuthorResponse(a model.Author) AuthorResponse {
	res := AuthorResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: model.NewDate(a.DateOfBirth),
		DateOfDeath: model.NewDate(a.DateOfDeath),
		Name:        model.DisplayName(a),
		Lifespan:    model.Lifespan(a),
		URL:         model.AuthorURL(a.ID),
	}
	if age, ok := model.AgeAtDeath(a); ok {
		res.AgeAtDeath = &age
	}
	return res
}

func toAuthorSummary(a model.Author) AuthorSummary {
	return AuthorSummary{
		ID:   a.ID,
		Name: model.DisplayName(a),
		URL:  model.AuthorURL(a.ID),
	}
}

func toGenreResponse(g model.Genre) GenreResponse {
	return GenreResponse{
		ID:   g.ID,
		Name: g.Name,
		URL:  model.GenreURL(g.ID),
	}
}

func toBookSummary(b model.Book) BookSummary {
	res := BookSummary{
		ID:      b.ID,
		Title:   b.Title,
		Summary: b.Summary,
		URL:     model.BookURL(b.ID),
	}
	if b.Author.ID != uuid.Nil {
		author := toAuthorSummary(b.Author)
		res.Author = &author
	}
	return res
}

func toBookSummaries(books []model.Book) []BookSummary {
	res := make([]BookSummary, 0, len(books))
	for _, b := range books {
		res = append(res, toBookSummary(b))
	}
	return res
}

func toBookResponse(b model.Book) BookResponse {
	genres := make([]GenreResponse, 0, len(b.Genres))
	for _, g := range b.Genres {
		genres = append(genres, toGenreResponse(g))
	}

	return BookResponse{
		ID:      b.ID,
		Title:   b.Title,
		Author:  toAuthorSummary(b.Author),
		Summary: b.Summary,
		ISBN:    b.ISBN,
		Genres:  genres,
		URL:     model.BookURL(b.ID),
	}
}

func toBookInstanceResponse(bi model.BookInstance) BookInstanceResponse {
	res := BookInstanceResponse{
		ID:               bi.ID,
		Imprint:          bi.Imprint,
		Status:           bi.Status,
		DueBack:          model.NewDate(bi.DueBack),
		DueBackFormatted: model.DueBackFormatted(bi),
		CreationDate:     bi.CreationDate,
		URL:              model.BookInstanceURL(bi.ID),
	}
	if bi.Book.ID != uuid.Nil {
		book := toBookSummary(bi.Book)
		res.Book = &book
	}
	for _, h := range bi.History {
		res.History = append(res.History, HistoryEntryResponse{Action: h.Action, Time: h.Time})
	}
	return res
}

func toBookInstanceResponses(instances []model.BookInstance) []BookInstanceResponse {
	res := make([]BookInstanceResponse, 0, len(instances))
	for _, bi := range instances {
		res = append(res, toBookInstanceResponse(bi))
	}
	return res
}

func toAuthorDetailResponse(d *catalog.AuthorDetail) AuthorDetailResponse {
	return AuthorDetailResponse{
		Author: toAuthorResponse(d.Author),
		Books:  toBookSummaries(d.Books),
	}
}

func toGenreDetailResponse(d *catalog.GenreDetail) GenreDetailResponse {
	return GenreDetailResponse{
		Genre: toGenreResponse(d.Genre),
		Books: toBookSummaries(d.Books),
	}
}

func toBookDetailResponse(d *catalog.BookDetail) BookDetailResponse {
	return BookDetailResponse{
		Book:      toBookResponse(d.Book),
		Instances: toBookInstanceResponses(d.Instances),
	}
}
