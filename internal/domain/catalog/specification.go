package catalog

// BookFormat is the physical or digital format of a book
type BookFormat string

const (
	FormatHardcover BookFormat = "hardcover"
	FormatPaperback BookFormat = "paperback"
	FormatEbook     BookFormat = "ebook"
	FormatAudiobook BookFormat = "audiobook"
)

// BookFormats lists the accepted formats
var BookFormats = []BookFormat{FormatHardcover, FormatPaperback, FormatEbook, FormatAudiobook}

// BookLanguages lists the accepted publication languages
var BookLanguages = []string{
	"english", "hindi", "bengali", "tamil", "telugu",
	"marathi", "gujarati", "kannada", "malayalam", "punjabi",
}

// BookReviews summarises reader reviews
type BookReviews struct {
	AverageRating float64  `json:"averageRating,omitempty"`
	TotalReviews  int      `json:"totalReviews,omitempty"`
	Reviews       []string `json:"reviews,omitempty"`
}

// BookSpecification holds the bibliographic details of a book product
type BookSpecification struct {
	ID                 string            `json:"_id,omitempty"`
	ProductID          string            `json:"productId"`
	ISBN               string            `json:"isbn,omitempty"`
	ISBN13             string            `json:"isbn13,omitempty"`
	ISBN10             string            `json:"isbn10,omitempty"`
	Format             BookFormat        `json:"format"`
	Language           string            `json:"language"`
	PageCount          int               `json:"pageCount,omitempty"`
	Dimensions         *Dimensions       `json:"dimensions,omitempty"`
	Weight             float64           `json:"weight,omitempty"`
	PublicationDate    string            `json:"publicationDate,omitempty"`
	Edition            string            `json:"edition,omitempty"`
	Volume             string            `json:"volume,omitempty"`
	SeriesName         string            `json:"seriesName,omitempty"`
	SeriesNumber       int               `json:"seriesNumber,omitempty"`
	AgeGroup           string            `json:"ageGroup,omitempty"`
	GradeLevel         string            `json:"gradeLevel,omitempty"`
	Subject            string            `json:"subject,omitempty"`
	Board              string            `json:"board,omitempty"`
	SyllabusYear       string            `json:"syllabusYear,omitempty"`
	Authors            []string          `json:"authors,omitempty"`
	Editors            []string          `json:"editors,omitempty"`
	Illustrators       []string          `json:"illustrators,omitempty"`
	Publisher          string            `json:"publisher,omitempty"`
	PublisherID        string            `json:"publisherId,omitempty"`
	AuthorID           string            `json:"authorId,omitempty"`
	BookSeriesID       string            `json:"bookSeriesId,omitempty"`
	TableOfContents    string            `json:"tableOfContents,omitempty"`
	Summary            string            `json:"summary,omitempty"`
	KeyFeatures        []string          `json:"keyFeatures,omitempty"`
	LearningObjectives []string          `json:"learningObjectives,omitempty"`
	Prerequisites      string            `json:"prerequisites,omitempty"`
	TargetAudience     string            `json:"targetAudience,omitempty"`
	CoverImageURL      string            `json:"coverImageUrl,omitempty"`
	SamplePages        []string          `json:"samplePages,omitempty"`
	HasDigitalVersion  bool              `json:"hasDigitalVersion"`
	HasAudioVersion    bool              `json:"hasAudioVersion"`
	DigitalFormats     map[string]string `json:"digitalFormats,omitempty"`
	Awards             []string          `json:"awards,omitempty"`
	Reviews            *BookReviews      `json:"reviews,omitempty"`
	AdditionalSpecs    map[string]any    `json:"additionalSpecs,omitempty"`
	Timestamps
}

func (b BookSpecification) GetID() string { return b.ID }

func (b BookSpecification) DisplayName() string {
	if b.ISBN13 != "" {
		return b.ISBN13
	}
	if b.ISBN != "" {
		return b.ISBN
	}
	return b.ProductID
}
