package catalog

// SocialMedia holds an author's profile links
type SocialMedia struct {
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// IsEmpty reports whether no profile link is set
func (s SocialMedia) IsEmpty() bool {
	return s == SocialMedia{}
}

// Author of catalog books
type Author struct {
	ID          string       `json:"_id,omitempty"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug,omitempty"`
	Biography   string       `json:"biography,omitempty"`
	DateOfBirth string       `json:"dateOfBirth,omitempty"`
	DateOfDeath string       `json:"dateOfDeath,omitempty"`
	Nationality string       `json:"nationality,omitempty"`
	Website     string       `json:"website,omitempty"`
	SocialMedia *SocialMedia `json:"socialMedia,omitempty"`
	PhotoURL    string       `json:"photoUrl,omitempty"`
	IsActive    bool         `json:"isActive"`
	BooksCount  int          `json:"booksCount,omitempty"`
	Awards      []string     `json:"awards,omitempty"`
	Genres      []string     `json:"genres,omitempty"`
	Timestamps
}

func (a Author) GetID() string       { return a.ID }
func (a Author) DisplayName() string { return a.Name }

// Publisher of catalog books
type Publisher struct {
	ID          string   `json:"_id,omitempty"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"description,omitempty"`
	Website     string   `json:"website,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Address     *Address `json:"address,omitempty"`
	FoundedYear *int     `json:"foundedYear,omitempty"`
	LogoURL     string   `json:"logoUrl,omitempty"`
	IsActive    bool     `json:"isActive"`
	BooksCount  int      `json:"booksCount,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Imprints    []string `json:"imprints,omitempty"`
	Timestamps
}

func (p Publisher) GetID() string       { return p.ID }
func (p Publisher) DisplayName() string { return p.Name }

// SeriesBook positions one book inside a series
type SeriesBook struct {
	BookID string `json:"bookId"`
	Order  int    `json:"order"`
	Title  string `json:"title"`
}

// BookSeries groups books published as a sequence
type BookSeries struct {
	ID                 string       `json:"_id,omitempty"`
	Name               string       `json:"name"`
	Slug               string       `json:"slug,omitempty"`
	Description        string       `json:"description,omitempty"`
	AuthorID           string       `json:"authorId,omitempty"`
	PublisherID        string       `json:"publisherId,omitempty"`
	Genre              string       `json:"genre,omitempty"`
	AgeGroup           string       `json:"ageGroup,omitempty"`
	TotalBooks         int          `json:"totalBooks,omitempty"`
	IsOngoing          bool         `json:"isOngoing"`
	FirstPublishedYear *int         `json:"firstPublishedYear,omitempty"`
	LastPublishedYear  *int         `json:"lastPublishedYear,omitempty"`
	CoverImageURL      string       `json:"coverImageUrl,omitempty"`
	IsActive           bool         `json:"isActive"`
	BookIDs            []string     `json:"bookIds,omitempty"`
	SeriesOrder        []SeriesBook `json:"seriesOrder,omitempty"`
	Timestamps
}

func (s BookSeries) GetID() string       { return s.ID }
func (s BookSeries) DisplayName() string { return s.Name }
