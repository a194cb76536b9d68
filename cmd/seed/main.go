// Command seed fills an empty catalog with a handful of sample records.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/config"
	"github.com/snnyvrz/locallibrary/internal/db"
	"github.com/snnyvrz/locallibrary/internal/logging"
	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type seedAuthor struct {
	firstName, familyName, dateOfBirth, dateOfDeath string
}

type seedBook struct {
	title, summary, isbn string
	author               int
	genres               []int
}

type seedInstance struct {
	book    int
	imprint string
	status  model.Status
}

var seedGenres = []string{"Fantasy", "Science Fiction", "French Poetry"}

var seedAuthors = []seedAuthor{
	{firstName: "Patrick", familyName: "Rothfuss", dateOfBirth: "1973-06-06"},
	{firstName: "Ben", familyName: "Bova", dateOfBirth: "1932-11-08"},
	{firstName: "Isaac", familyName: "Asimov", dateOfBirth: "1920-01-02", dateOfDeath: "1992-04-06"},
	{firstName: "Bob", familyName: "Billings"},
	{firstName: "Jim", familyName: "Jones", dateOfBirth: "1971-12-16"},
}

var seedBooks = []seedBook{
	{
		title:   "The Name of the Wind (The Kingkiller Chronicle, #1)",
		summary: "I have stolen princesses back from sleeping barrow kings. I burned down the town of Trebon. I have spent the night with Felurian and left with both my sanity and my life.",
		isbn:    "9781473211896",
		author:  0,
		genres:  []int{0},
	},
	{
		title:   "The Wise Man's Fear (The Kingkiller Chronicle, #2)",
		summary: "Picking up the tale of Kvothe Kingkiller once again, we follow him into exile, into political intrigue, courtship, adventure, love and magic.",
		isbn:    "9788401352836",
		author:  0,
		genres:  []int{0},
	},
	{
		title:   "The Slow Regard of Silent Things (Kingkiller Chronicle)",
		summary: "Deep below the University, there is a dark place. Few people know of it: a broken web of ancient passageways and abandoned rooms.",
		isbn:    "9780756411336",
		author:  0,
		genres:  []int{0},
	},
	{
		title:   "Apes and Angels",
		summary: "Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity. Humans went to the stars in a desperate crusade to save intelligent life wherever they found it.",
		isbn:    "9780765379528",
		author:  1,
		genres:  []int{1},
	},
	{
		title:   "Death Wave",
		summary: "In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system. They discovered the ruins of an ancient alien civilization.",
		isbn:    "9780765379504",
		author:  1,
		genres:  []int{1},
	},
	{
		title:   "Test Book 1",
		summary: "Summary of test book 1",
		isbn:    "ISBN111111",
		author:  4,
		genres:  []int{0, 1},
	},
	{
		title:   "Test Book 2",
		summary: "Summary of test book 2",
		isbn:    "ISBN222222",
		author:  4,
	},
}

var seedInstances = []seedInstance{
	{book: 0, imprint: "London Gollancz, 2014.", status: model.StatusAvailable},
	{book: 1, imprint: "Gollancz, 2011.", status: model.StatusLoaned},
	{book: 2, imprint: "Gollancz, 2015."},
	{book: 3, imprint: "New York Tom Doherty Associates, 2016.", status: model.StatusAvailable},
	{book: 3, imprint: "New York Tom Doherty Associates, 2016.", status: model.StatusAvailable},
	{book: 3, imprint: "New York Tom Doherty Associates, 2016.", status: model.StatusAvailable},
	{book: 4, imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", status: model.StatusAvailable},
	{book: 4, imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", status: model.StatusMaintenance},
	{book: 4, imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", status: model.StatusLoaned},
	{book: 0, imprint: "Imprint XXX2"},
	{book: 1, imprint: "Imprint XXX3"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Init("info", true)
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(cfg.LogLevel, cfg.GinMode == "debug")

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	svc := catalog.NewService(repository.NewGormStore(database))
	err = seed(context.Background(), svc)

	if cerr := db.Close(database); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close database")
	}
	if err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
}

// seed refuses to touch a catalog that already has authors or books.
func seed(ctx context.Context, svc *catalog.Service) error {
	counts, err := svc.GetOverviewCounts(ctx)
	if err != nil {
		return err
	}
	if counts.Authors > 0 || counts.Books > 0 {
		log.Info().
			Int64("authors", counts.Authors).
			Int64("books", counts.Books).
			Msg("catalog is not empty, skipping seed")
		return nil
	}

	genres := make([]*model.Genre, 0, len(seedGenres))
	for _, name := range seedGenres {
		g, _, err := svc.CreateOrReuseGenre(ctx, name)
		if err != nil {
			return fmt.Errorf("create genre %q: %w", name, err)
		}
		log.Info().Str("id", g.ID.String()).Msgf("new genre: %s", g.Name)
		genres = append(genres, g)
	}

	authors := make([]*model.Author, 0, len(seedAuthors))
	for _, a := range seedAuthors {
		author, err := svc.CreateAuthor(ctx, validation.Form{
			validation.FieldFirstName:   {a.firstName},
			validation.FieldFamilyName:  {a.familyName},
			validation.FieldDateOfBirth: {a.dateOfBirth},
			validation.FieldDateOfDeath: {a.dateOfDeath},
		})
		if err != nil {
			return fmt.Errorf("create author %s %s: %w", a.firstName, a.familyName, err)
		}
		log.Info().Str("id", author.ID.String()).Msgf("new author: %s %s", author.FirstName, author.FamilyName)
		authors = append(authors, author)
	}

	books := make([]*model.Book, 0, len(seedBooks))
	for _, b := range seedBooks {
		form := validation.Form{
			validation.FieldTitle:   {b.title},
			validation.FieldSummary: {b.summary},
			validation.FieldISBN:    {b.isbn},
			validation.FieldAuthor:  {authors[b.author].ID.String()},
		}
		for _, gi := range b.genres {
			form[validation.FieldGenres] = append(form[validation.FieldGenres], genres[gi].ID.String())
		}

		book, err := svc.CreateBook(ctx, form)
		if err != nil {
			return fmt.Errorf("create book %q: %w", b.title, err)
		}
		log.Info().Str("id", book.ID.String()).Msgf("new book: %s", book.Title)
		books = append(books, book)
	}

	for _, in := range seedInstances {
		form := validation.Form{
			validation.FieldBook:    {books[in.book].ID.String()},
			validation.FieldImprint: {in.imprint},
		}
		if in.status != "" {
			form[validation.FieldStatus] = []string{string(in.status)}
		}

		bi, err := svc.CreateBookInstance(ctx, form)
		if err != nil {
			return fmt.Errorf("create book instance of %q: %w", books[in.book].Title, err)
		}
		log.Info().Str("id", bi.ID.String()).Str("status", string(bi.Status)).Msg("new book instance")
	}

	return nil
}
