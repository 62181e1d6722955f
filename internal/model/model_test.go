package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/club-stadium-api/internal/validation"
)

func TestClubInputValidate(t *testing.T) {
	var in ClubInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"FC Alpha","place":0,"clubId":10}`), &in))
	assert.NoError(t, in.Validate(), "an explicit zero place is valid")

	var missing ClubInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &missing))
	err := missing.Validate()
	require.Error(t, err)

	fields := map[string]string{}
	for _, fe := range validation.Fields(err) {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, map[string]string{
		"name":   "is required",
		"place":  "is required",
		"clubId": "is required",
	}, fields)
}

func TestInputNumbersFitInt32(t *testing.T) {
	require.NoError(t, NewClubInput("FC Alpha", math.MaxInt32, math.MinInt32).Validate())

	fields := validation.Fields(NewClubInput("FC Alpha", math.MaxInt32+1, -1<<40).Validate())
	assert.ElementsMatch(t, []validation.FieldError{
		{Field: "place", Error: "must be between -2147483648 and 2147483647"},
		{Field: "clubId", Error: "must be between -2147483648 and 2147483647"},
	}, fields)

	seats := validation.Fields(NewStadiumInput("FC Alpha", "Alpha Arena", 1, math.MaxInt32+1).Validate())
	require.Len(t, seats, 1)
	assert.Equal(t, "amountOfSeats", seats[0].Field)
}

func TestStadiumInputRecord(t *testing.T) {
	in := NewStadiumInput("FC Alpha", "Alpha Arena", 7, 42000)
	require.NoError(t, in.Validate())

	got := in.Record(3)
	assert.Equal(t, Stadium{ID: 3, ClubName: "FC Alpha", StadiumsName: "Alpha Arena", StadiumsID: 7, AmountOfSeats: 42000}, got)
}

func TestStadiumInputMissingSeats(t *testing.T) {
	var in StadiumInput
	require.NoError(t, json.Unmarshal([]byte(`{"clubName":"A","stadiumsName":"B","stadiumsId":1}`), &in))

	fields := validation.Fields(in.Validate())
	require.Len(t, fields, 1)
	assert.Equal(t, "amountOfSeats", fields[0].Field)
}

func TestClubJSONKeys(t *testing.T) {
	b, err := json.Marshal(Club{ID: 1, Name: "FC Alpha", Place: 2, ClubID: 10})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"FC Alpha","place":2,"clubId":10}`, string(b))
}
