package domain

import "time"

// Profile is the public career record bound 1:1 to a user. Experience and
// education are embedded collections owned exclusively by the profile,
// ordered most-recent-first.
type Profile struct {
	ID         string       `json:"id" bson:"_id,omitempty"`
	UserID     string       `json:"user" bson:"user"`
	Company    string       `json:"company,omitempty" bson:"company,omitempty"`
	Website    string       `json:"website,omitempty" bson:"website,omitempty"`
	Location   string       `json:"location,omitempty" bson:"location,omitempty"`
	Bio        string       `json:"bio,omitempty" bson:"bio,omitempty"`
	Status     string       `json:"status" bson:"status"`
	Skills     []string     `json:"skills" bson:"skills"`
	GithubUser string       `json:"githubusername,omitempty" bson:"githubusername,omitempty"`
	Social     SocialLinks  `json:"social" bson:"social"`
	Experience []Experience `json:"experience" bson:"experience"`
	Education  []Education  `json:"education" bson:"education"`
	CreatedAt  time.Time    `json:"date" bson:"date"`

	// Denormalized owner fields, populated on reads that join the user.
	OwnerName   string `json:"name,omitempty" bson:"-"`
	OwnerAvatar string `json:"avatar,omitempty" bson:"-"`
}

// SocialLinks maps provider to profile URL.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

// Experience is a single employment entry. ID is server-assigned and
// independent of the entry's position in the sequence.
type Experience struct {
	ID          string     `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title"`
	Company     string     `json:"company" bson:"company"`
	Location    string     `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time  `json:"from" bson:"from"`
	To          *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool       `json:"current" bson:"current"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
}

// EntryID satisfies Keyed for embedded-collection lookups.
func (e Experience) EntryID() string { return e.ID }

// Education is a single schooling entry.
type Education struct {
	ID           string     `json:"id" bson:"id"`
	School       string     `json:"school" bson:"school"`
	Degree       string     `json:"degree" bson:"degree"`
	FieldOfStudy string     `json:"fieldofstudy" bson:"fieldofstudy"`
	From         time.Time  `json:"from" bson:"from"`
	To           *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current      bool       `json:"current" bson:"current"`
	Description  string     `json:"description,omitempty" bson:"description,omitempty"`
}

func (e Education) EntryID() string { return e.ID }
