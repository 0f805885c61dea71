package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Ada Lovelace"))
	assert.True(t, ValidName("Jo"))
	assert.True(t, ValidName("  Ada  ")) // surrounding whitespace trimmed
	assert.False(t, ValidName("A"))
	assert.False(t, ValidName("Anne-Marie")) // hyphen not accepted
	assert.False(t, ValidName("R2D2"))
	assert.False(t, ValidName(""))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.com"))
	assert.True(t, ValidEmail("crew.lead+mars@odyssey.space"))
	assert.False(t, ValidEmail("a@b")) // missing dot after the @
	assert.False(t, ValidEmail("a b@c.com"))
	assert.False(t, ValidEmail("@b.com"))
	assert.False(t, ValidEmail("a@.")) // empty segments
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+11234567890"))
	assert.True(t, ValidPhone("9876543"))
	assert.True(t, ValidPhone("+1 123 456 7890")) // spaces stripped before matching
	assert.False(t, ValidPhone("0123"))           // leading zero
	assert.False(t, ValidPhone("+0123"))
	assert.False(t, ValidPhone("12345678901234567")) // 17 digits
	assert.False(t, ValidPhone("555-0100"))
	assert.False(t, ValidPhone(""))
}

func TestValidDepartureDate(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	assert.True(t, ValidDepartureDate(today))
	assert.True(t, ValidDepartureDate(future))
	assert.False(t, ValidDepartureDate(yesterday))
	assert.False(t, ValidDepartureDate("2000-01-01"))
	assert.False(t, ValidDepartureDate("01/02/2030"))
	assert.False(t, ValidDepartureDate("not a date"))
}

func TestValidateField(t *testing.T) {
	t.Run("required check runs before the type rule", func(t *testing.T) {
		fe := ValidateField("email", "   ")
		require.NotNil(t, fe)
		assert.Equal(t, "This field is required", fe.Message)
	})

	t.Run("type rule message on malformed value", func(t *testing.T) {
		fe := ValidateField("email", "a@b")
		require.NotNil(t, fe)
		assert.Equal(t, "Please enter a valid email address", fe.Message)

		fe = ValidateField("name", "X")
		require.NotNil(t, fe)
		assert.Equal(t, "Please enter a valid name (2-50 characters, letters only)", fe.Message)

		fe = ValidateField("phone", "0123")
		require.NotNil(t, fe)
		assert.Equal(t, "Please enter a valid phone number", fe.Message)
	})

	t.Run("nil on a passing value", func(t *testing.T) {
		assert.Nil(t, ValidateField("email", "a@b.com"))
		assert.Nil(t, ValidateField("name", "Ada"))
		assert.Nil(t, ValidateField("phone", "+11234567890"))
	})
}

func TestValidatePassenger(t *testing.T) {
	p := models.Passenger{
		Position:  2,
		FirstName: "Ada",
		LastName:  "",
		Email:     "bad-email",
		Phone:     "+11234567890",
	}
	errs := ValidatePassenger(p)
	require.Len(t, errs, 2)
	assert.Equal(t, "passengers[2].last_name", errs[0].Field)
	assert.Equal(t, "This field is required", errs[0].Message)
	assert.Equal(t, "passengers[2].email", errs[1].Field)
	assert.Equal(t, "Please enter a valid email address", errs[1].Message)
}

func TestValidateForm(t *testing.T) {
	t.Run("empty form reports every missing selection", func(t *testing.T) {
		state := models.FormState{
			Passengers: []models.FormPassenger{{Passenger: models.Passenger{Position: 1}}},
		}
		errs := ValidateForm(state)

		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, e.Field)
		}
		assert.Contains(t, fields, "destination")
		assert.Contains(t, fields, "departure_date")
		assert.Contains(t, fields, "accommodation")
		assert.Contains(t, fields, "passengers[1].first_name")
		assert.Contains(t, fields, "passengers[1].phone")
	})

	t.Run("past date reported even when everything else passes", func(t *testing.T) {
		state := models.FormState{
			DestinationID:   "mars",
			AccommodationID: "pod",
			DepartureDate:   "2000-01-01",
			Passengers: []models.FormPassenger{{Passenger: models.Passenger{
				Position: 1, FirstName: "Ada", LastName: "Lovelace",
				Email: "ada@odyssey.space", Phone: "+11234567890",
			}}},
		}
		errs := ValidateForm(state)
		require.Len(t, errs, 1)
		assert.Equal(t, "departure_date", errs[0].Field)
		assert.Equal(t, "Departure date must be today or in the future", errs[0].Message)
	})

	t.Run("complete form validates clean", func(t *testing.T) {
		future := time.Now().AddDate(0, 2, 0).Format("2006-01-02")
		state := models.FormState{
			DestinationID:   "mars",
			AccommodationID: "pod",
			DepartureDate:   future,
			Passengers: []models.FormPassenger{
				{Passenger: models.Passenger{
					Position: 1, FirstName: "Ada", LastName: "Lovelace",
					Email: "ada@odyssey.space", Phone: "+11234567890",
				}},
				{Passenger: models.Passenger{
					Position: 2, FirstName: "Ben", LastName: "Carter",
					Email: "ben@odyssey.space", Phone: "9876543",
				}},
			},
		}
		assert.Empty(t, ValidateForm(state))
	})
}
