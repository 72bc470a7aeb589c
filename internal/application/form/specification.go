package form

import (
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

// NewBookSpecificationForm creates the book specification dialog state
func NewBookSpecificationForm(record *catalog.BookSpecification) *Form[catalog.BookSpecification] {
	type spec = catalog.BookSpecification

	return New("book specification", record,
		func() spec {
			return spec{Format: catalog.FormatPaperback, Language: "english"}
		},
		WithFields(
			Text("productId", "Product ID", func(b *spec) *string { return &b.ProductID }),
			Text("isbn", "ISBN", func(b *spec) *string { return &b.ISBN }),
			Text("isbn13", "ISBN-13", func(b *spec) *string { return &b.ISBN13 }),
			Text("isbn10", "ISBN-10", func(b *spec) *string { return &b.ISBN10 }),
			Choice("format", "Format", func(b *spec) *catalog.BookFormat { return &b.Format }, catalog.BookFormats...),
			Choice("language", "Language", func(b *spec) *string { return &b.Language }, catalog.BookLanguages...),
			Int("pageCount", "Pages", func(b *spec) *int { return &b.PageCount }),
			Float("weight", "Weight (g)", func(b *spec) *float64 { return &b.Weight }),
			Text("publicationDate", "Published", func(b *spec) *string { return &b.PublicationDate }),
			Text("edition", "Edition", func(b *spec) *string { return &b.Edition }),
			Text("volume", "Volume", func(b *spec) *string { return &b.Volume }),
			Text("seriesName", "Series", func(b *spec) *string { return &b.SeriesName }),
			Int("seriesNumber", "Series number", func(b *spec) *int { return &b.SeriesNumber }),
			Text("ageGroup", "Age group", func(b *spec) *string { return &b.AgeGroup }),
			Text("gradeLevel", "Grade", func(b *spec) *string { return &b.GradeLevel }),
			Text("subject", "Subject", func(b *spec) *string { return &b.Subject }),
			Text("board", "Board", func(b *spec) *string { return &b.Board }),
			Text("syllabusYear", "Syllabus year", func(b *spec) *string { return &b.SyllabusYear }),
			List("authors", "Authors", func(b *spec) *[]string { return &b.Authors }),
			List("editors", "Editors", func(b *spec) *[]string { return &b.Editors }),
			List("illustrators", "Illustrators", func(b *spec) *[]string { return &b.Illustrators }),
			Text("publisher", "Publisher", func(b *spec) *string { return &b.Publisher }),
			Text("publisherId", "Publisher ID", func(b *spec) *string { return &b.PublisherID }),
			Text("authorId", "Author ID", func(b *spec) *string { return &b.AuthorID }),
			Text("bookSeriesId", "Series ID", func(b *spec) *string { return &b.BookSeriesID }),
			Text("summary", "Summary", func(b *spec) *string { return &b.Summary }),
			List("keyFeatures", "Key features", func(b *spec) *[]string { return &b.KeyFeatures }),
			List("learningObjectives", "Learning objectives", func(b *spec) *[]string { return &b.LearningObjectives }),
			Text("targetAudience", "Audience", func(b *spec) *string { return &b.TargetAudience }),
			Text("coverImageUrl", "Cover image URL", func(b *spec) *string { return &b.CoverImageURL }),
			List("samplePages", "Sample pages", func(b *spec) *[]string { return &b.SamplePages }),
			List("awards", "Awards", func(b *spec) *[]string { return &b.Awards }),
			Bool("hasDigitalVersion", "Digital version", func(b *spec) *bool { return &b.HasDigitalVersion }),
			Bool("hasAudioVersion", "Audio version", func(b *spec) *bool { return &b.HasAudioVersion }),
		),
		WithRules(
			Required("productId", "Product is required", func(b *spec) string { return b.ProductID }),
			Required("format", "Format is required", func(b *spec) string { return string(b.Format) }),
			Required("language", "Language is required", func(b *spec) string { return b.Language }),
			MinInt("pageCount", "Page count cannot be negative", func(b *spec) int { return b.PageCount }, 0),
		),
	)
}
