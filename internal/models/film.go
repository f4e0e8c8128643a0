package models

import "time"

// Film is a single cataloged media item. Optional text fields use the empty
// string as "absent"; optional list fields use a nil slice. Element order in
// Actors/Genre/Tags is preserved; the first element is the sort key for the
// actor/genre/tags sort options.
type Film struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Director  string    `json:"director"`
	IDNumber  string    `json:"idNumber"`
	Year      string    `json:"year,omitempty"`
	Genre     []string  `json:"genre,omitempty"`
	Actors    []string  `json:"actors,omitempty"`
	Producer  string    `json:"producer,omitempty"`
	Image     string    `json:"image,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FilmInput carries every Film field the caller may set. ID and CreatedAt
// are assigned by the service at creation time.
type FilmInput struct {
	Title    string   `json:"title"`
	Director string   `json:"director"`
	IDNumber string   `json:"idNumber"`
	Year     string   `json:"year"`
	Genre    []string `json:"genre"`
	Actors   []string `json:"actors"`
	Producer string   `json:"producer"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
}

// FilmPatch is a partial update. Pointer fields distinguish "not sent" from
// "set to empty", so an update only touches the fields it names.
type FilmPatch struct {
	Title    *string   `json:"title"`
	Director *string   `json:"director"`
	IDNumber *string   `json:"idNumber"`
	Year     *string   `json:"year"`
	Genre    *[]string `json:"genre"`
	Actors   *[]string `json:"actors"`
	Producer *string   `json:"producer"`
	Image    *string   `json:"image"`
	Tags     *[]string `json:"tags"`
}

// Apply merges the patch into f. ID and CreatedAt are never altered.
func (p *FilmPatch) Apply(f *Film) {
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Director != nil {
		f.Director = *p.Director
	}
	if p.IDNumber != nil {
		f.IDNumber = *p.IDNumber
	}
	if p.Year != nil {
		f.Year = *p.Year
	}
	if p.Genre != nil {
		f.Genre = copyStrings(*p.Genre)
	}
	if p.Actors != nil {
		f.Actors = copyStrings(*p.Actors)
	}
	if p.Producer != nil {
		f.Producer = *p.Producer
	}
	if p.Image != nil {
		f.Image = *p.Image
	}
	if p.Tags != nil {
		f.Tags = copyStrings(*p.Tags)
	}
}

// Clone returns a deep copy, so snapshots handed to readers cannot alias the
// store's slices.
func (f *Film) Clone() *Film {
	c := *f
	c.Genre = copyStrings(f.Genre)
	c.Actors = copyStrings(f.Actors)
	c.Tags = copyStrings(f.Tags)
	return &c
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
