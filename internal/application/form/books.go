package form

import (
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

// NewAuthorForm creates the author dialog state
func NewAuthorForm(record *catalog.Author) *Form[catalog.Author] {
	f := New("author", record,
		func() catalog.Author {
			return catalog.Author{IsActive: true}
		},
		WithFields(
			Text("name", "Name", func(a *catalog.Author) *string { return &a.Name }),
			Text("slug", "Slug", func(a *catalog.Author) *string { return &a.Slug }),
			Text("biography", "Biography", func(a *catalog.Author) *string { return &a.Biography }),
			Text("dateOfBirth", "Date of birth", func(a *catalog.Author) *string { return &a.DateOfBirth }),
			Text("dateOfDeath", "Date of death", func(a *catalog.Author) *string { return &a.DateOfDeath }),
			Text("nationality", "Nationality", func(a *catalog.Author) *string { return &a.Nationality }),
			Text("website", "Website", func(a *catalog.Author) *string { return &a.Website }),
			Text("photoUrl", "Photo URL", func(a *catalog.Author) *string { return &a.PhotoURL }),
			Text("twitter", "Twitter", func(a *catalog.Author) *string { return &a.SocialMedia.Twitter }),
			Text("facebook", "Facebook", func(a *catalog.Author) *string { return &a.SocialMedia.Facebook }),
			Text("instagram", "Instagram", func(a *catalog.Author) *string { return &a.SocialMedia.Instagram }),
			Text("linkedin", "LinkedIn", func(a *catalog.Author) *string { return &a.SocialMedia.LinkedIn }),
			List("awards", "Awards", func(a *catalog.Author) *[]string { return &a.Awards }),
			List("genres", "Genres", func(a *catalog.Author) *[]string { return &a.Genres }),
			Bool("isActive", "Active", func(a *catalog.Author) *bool { return &a.IsActive }),
		),
		WithRules(
			Required("name", "Author name is required", func(a *catalog.Author) string { return a.Name }),
		),
		WithSlug(
			func(a *catalog.Author) *string { return &a.Name },
			func(a *catalog.Author) *string { return &a.Slug },
		),
		WithPrepare(func(a *catalog.Author) {
			if a.SocialMedia != nil && a.SocialMedia.IsEmpty() {
				a.SocialMedia = nil
			}
		}),
	)
	if f.Value.SocialMedia == nil {
		f.Value.SocialMedia = &catalog.SocialMedia{}
	}
	return f
}

// NewPublisherForm creates the publisher dialog state
func NewPublisherForm(record *catalog.Publisher) *Form[catalog.Publisher] {
	f := New("publisher", record,
		func() catalog.Publisher {
			return catalog.Publisher{IsActive: true}
		},
		WithFields(
			Text("name", "Name", func(p *catalog.Publisher) *string { return &p.Name }),
			Text("slug", "Slug", func(p *catalog.Publisher) *string { return &p.Slug }),
			Text("description", "Description", func(p *catalog.Publisher) *string { return &p.Description }),
			Text("website", "Website", func(p *catalog.Publisher) *string { return &p.Website }),
			Text("email", "Email", func(p *catalog.Publisher) *string { return &p.Email }),
			Text("phone", "Phone", func(p *catalog.Publisher) *string { return &p.Phone }),
			Text("street", "Street", func(p *catalog.Publisher) *string { return &p.Address.Street }),
			Text("city", "City", func(p *catalog.Publisher) *string { return &p.Address.City }),
			Text("state", "State", func(p *catalog.Publisher) *string { return &p.Address.State }),
			Text("postalCode", "Postal code", func(p *catalog.Publisher) *string { return &p.Address.PostalCode }),
			Text("country", "Country", func(p *catalog.Publisher) *string { return &p.Address.Country }),
			OptionalInt("foundedYear", "Founded", func(p *catalog.Publisher) **int { return &p.FoundedYear }),
			Text("logoUrl", "Logo URL", func(p *catalog.Publisher) *string { return &p.LogoURL }),
			List("specialties", "Specialties", func(p *catalog.Publisher) *[]string { return &p.Specialties }),
			List("imprints", "Imprints", func(p *catalog.Publisher) *[]string { return &p.Imprints }),
			Bool("isActive", "Active", func(p *catalog.Publisher) *bool { return &p.IsActive }),
		),
		WithRules(
			Required("name", "Publisher name is required", func(p *catalog.Publisher) string { return p.Name }),
			Email("email", "Invalid email format", func(p *catalog.Publisher) string { return p.Email }),
		),
		WithSlug(
			func(p *catalog.Publisher) *string { return &p.Name },
			func(p *catalog.Publisher) *string { return &p.Slug },
		),
		WithPrepare(func(p *catalog.Publisher) {
			if p.Address != nil && p.Address.IsEmpty() {
				p.Address = nil
			}
			if len(p.Specialties) == 0 {
				p.Specialties = nil
			}
			if len(p.Imprints) == 0 {
				p.Imprints = nil
			}
			if p.FoundedYear != nil && *p.FoundedYear == 0 {
				p.FoundedYear = nil
			}
		}),
	)
	if f.Value.Address == nil {
		f.Value.Address = &catalog.Address{}
	}
	return f
}

// NewBookSeriesForm creates the book series dialog state
func NewBookSeriesForm(record *catalog.BookSeries) *Form[catalog.BookSeries] {
	return New("book series", record,
		func() catalog.BookSeries {
			return catalog.BookSeries{IsActive: true}
		},
		WithFields(
			Text("name", "Name", func(s *catalog.BookSeries) *string { return &s.Name }),
			Text("slug", "Slug", func(s *catalog.BookSeries) *string { return &s.Slug }),
			Text("description", "Description", func(s *catalog.BookSeries) *string { return &s.Description }),
			Text("authorId", "Author ID", func(s *catalog.BookSeries) *string { return &s.AuthorID }),
			Text("publisherId", "Publisher ID", func(s *catalog.BookSeries) *string { return &s.PublisherID }),
			Text("genre", "Genre", func(s *catalog.BookSeries) *string { return &s.Genre }),
			Text("ageGroup", "Age group", func(s *catalog.BookSeries) *string { return &s.AgeGroup }),
			Int("totalBooks", "Total books", func(s *catalog.BookSeries) *int { return &s.TotalBooks }),
			Bool("isOngoing", "Ongoing", func(s *catalog.BookSeries) *bool { return &s.IsOngoing }),
			OptionalInt("firstPublishedYear", "First published", func(s *catalog.BookSeries) **int { return &s.FirstPublishedYear }),
			OptionalInt("lastPublishedYear", "Last published", func(s *catalog.BookSeries) **int { return &s.LastPublishedYear }),
			Text("coverImageUrl", "Cover image URL", func(s *catalog.BookSeries) *string { return &s.CoverImageURL }),
			List("bookIds", "Book IDs", func(s *catalog.BookSeries) *[]string { return &s.BookIDs }),
			Bool("isActive", "Active", func(s *catalog.BookSeries) *bool { return &s.IsActive }),
		),
		WithRules(
			Required("name", "Series name is required", func(s *catalog.BookSeries) string { return s.Name }),
			Check("lastPublishedYear", "Last year cannot be before the first", func(s *catalog.BookSeries) bool {
				return s.FirstPublishedYear == nil || s.LastPublishedYear == nil || *s.LastPublishedYear >= *s.FirstPublishedYear
			}),
		),
		WithSlug(
			func(s *catalog.BookSeries) *string { return &s.Name },
			func(s *catalog.BookSeries) *string { return &s.Slug },
		),
		WithPrepare(func(s *catalog.BookSeries) {
			if s.FirstPublishedYear != nil && *s.FirstPublishedYear == 0 {
				s.FirstPublishedYear = nil
			}
			if s.LastPublishedYear != nil && *s.LastPublishedYear == 0 {
				s.LastPublishedYear = nil
			}
		}),
	)
}
