package model

import "github.com/iliyamo/club-stadium-api/internal/validation"

// Club represents a football club.  This struct corresponds to a row in
// the `club` table and is also the shape returned by the API.
//
// Fields:
//  ID     – primary key, assigned by storage on insert and never changed.
//  Name   – display name of the club; list endpoints sort by it.
//  Place  – current league position.
//  ClubID – external reference number supplied by the client.
type Club struct {
	ID     uint64 `json:"id"`     // club.id
	Name   string `json:"name"`   // club.name
	Place  int    `json:"place"`  // club.place
	ClubID int    `json:"clubId"` // club.club_id
}

// ClubInput is the body accepted by the create and update endpoints.  Every
// field is required; numbers are pointers so that an explicit 0 is accepted
// while a missing key is rejected.  Numbers must fit the INT columns they are
// stored in.
type ClubInput struct {
	Name   string `json:"name" validate:"required,max=255"`
	Place  *int   `json:"place" validate:"required,int32"`
	ClubID *int   `json:"clubId" validate:"required,int32"`
}

// Validate checks the struct tags.
func (in ClubInput) Validate() error {
	return validation.Struct(in)
}

// Record builds the stored representation of the input under the given id.
// It must only be called on validated input.
func (in ClubInput) Record(id uint64) Club {
	return Club{ID: id, Name: in.Name, Place: deref(in.Place), ClubID: deref(in.ClubID)}
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// NewClubInput is a convenience constructor used by callers that already
// hold plain values (seeders, tests).
func NewClubInput(name string, place, clubID int) ClubInput {
	return ClubInput{Name: name, Place: &place, ClubID: &clubID}
}
