package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Values derived from stored entities. None of these are persisted.

const (
	longDateLayout  = "January 2, 2006"
	shortDateLayout = "Jan 2, 2006"
)

// DisplayName renders "Family, First", or whichever part is present.
func DisplayName(a Author) string {
	switch {
	case a.FirstName != "" && a.FamilyName != "":
		return a.FamilyName + ", " + a.FirstName
	case a.FirstName != "":
		return a.FirstName
	default:
		return a.FamilyName
	}
}

func Lifespan(a Author) string {
	birth, death := "", ""
	if a.DateOfBirth != nil {
		birth = strconv.Itoa(a.DateOfBirth.Year())
	}
	if a.DateOfDeath != nil {
		death = strconv.Itoa(a.DateOfDeath.Year())
	}
	return birth + " - " + death
}

// AgeAtDeath reports whole years lived. The second result is false when
// either date is missing or death precedes birth.
func AgeAtDeath(a Author) (int, bool) {
	if a.DateOfBirth == nil || a.DateOfDeath == nil {
		return 0, false
	}
	return YearsBetween(*a.DateOfBirth, *a.DateOfDeath)
}

// YearsBetween counts full calendar years from start to end, dropping the
// final year when end's month/day falls before start's month/day.
func YearsBetween(start, end time.Time) (int, bool) {
	if start.After(end) {
		return 0, false
	}

	years := end.Year() - start.Year()
	if end.Month() < start.Month() ||
		(end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	return years, true
}

func DateOfBirthFormatted(a Author) string {
	if a.DateOfBirth == nil {
		return "?"
	}
	return a.DateOfBirth.Format(longDateLayout)
}

func DateOfDeathFormatted(a Author) string {
	if a.DateOfDeath == nil {
		return ""
	}
	return a.DateOfDeath.Format(longDateLayout)
}

func DueBackFormatted(bi BookInstance) string {
	if bi.DueBack == nil {
		return ""
	}
	return bi.DueBack.Format(shortDateLayout)
}

func AuthorURL(id uuid.UUID) string {
	return "/catalog/author/" + id.String()
}

func GenreURL(id uuid.UUID) string {
	return "/catalog/genre/" + id.String()
}

func BookURL(id uuid.UUID) string {
	return "/catalog/book/" + id.String()
}

func BookInstanceURL(id uuid.UUID) string {
	return "/catalog/bookinstance/" + id.String()
}
