package model

import "github.com/iliyamo/club-stadium-api/internal/validation"

// Stadium represents the home ground of a club.  The club is referenced by
// name rather than by id, matching the shape clients submit.  This struct
// corresponds to a row in the `stadium` table.
//
// Fields:
//  ID            – primary key, assigned by storage on insert.
//  ClubName      – name of the owning club (not enforced as a foreign key).
//  StadiumsName  – name of the stadium; list endpoints sort by it.
//  StadiumsID    – external reference number supplied by the client.
//  AmountOfSeats – seating capacity.
type Stadium struct {
	ID            uint64 `json:"id"`            // stadium.id
	ClubName      string `json:"clubName"`      // stadium.club_name
	StadiumsName  string `json:"stadiumsName"`  // stadium.stadiums_name
	StadiumsID    int    `json:"stadiumsId"`    // stadium.stadiums_id
	AmountOfSeats int    `json:"amountOfSeats"` // stadium.amount_of_seats
}

// StadiumInput is the body accepted by the stadium create and update
// endpoints.
type StadiumInput struct {
	ClubName      string `json:"clubName" validate:"required,max=255"`
	StadiumsName  string `json:"stadiumsName" validate:"required,max=255"`
	StadiumsID    *int   `json:"stadiumsId" validate:"required,int32"`
	AmountOfSeats *int   `json:"amountOfSeats" validate:"required,int32"`
}

// Validate checks the struct tags.
func (in StadiumInput) Validate() error {
	return validation.Struct(in)
}

// Record builds the stored representation of the input under the given id.
func (in StadiumInput) Record(id uint64) Stadium {
	return Stadium{
		ID:            id,
		ClubName:      in.ClubName,
		StadiumsName:  in.StadiumsName,
		StadiumsID:    deref(in.StadiumsID),
		AmountOfSeats: deref(in.AmountOfSeats),
	}
}

// NewStadiumInput builds a StadiumInput from plain values.
func NewStadiumInput(clubName, stadiumsName string, stadiumsID, seats int) StadiumInput {
	return StadiumInput{
		ClubName:      clubName,
		StadiumsName:  stadiumsName,
		StadiumsID:    &stadiumsID,
		AmountOfSeats: &seats,
	}
}
