package booking

import (
	"testing"

	"stayfront/models"

	"github.com/stretchr/testify/assert"
)

func TestSplitHolderName(t *testing.T) {
	cases := []struct {
		full    string
		name    string
		surname string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane Anne Doe", "Jane", "Anne Doe"},
		{"Jane", "Jane", "Guest"},
		{"", "Guest", "Guest"},
		{"   Jane   Doe  ", "Jane", "Doe"},
	}
	for _, tc := range cases {
		holder := splitHolderName(tc.full)
		assert.Equal(t, models.CardHolder{Name: tc.name, Surname: tc.surname}, holder, "full name %q", tc.full)
	}
}

func TestValidateDraftRequiredFields(t *testing.T) {
	base := models.BookingDraft{
		OptionRefID: "opt-1",
		CheckIn:     "2025-06-01",
		CheckOut:    "2025-06-03",
		Adults:      2,
		Guest:       models.GuestInfo{FullName: "Jane Doe", Email: "jane@example.com"},
	}

	assert.NoError(t, validateDraft(base, nil))

	missing := base
	missing.OptionRefID = ""
	err := validateDraft(missing, nil)
	assert.EqualError(t, err, "optionRefId is required")

	missing = base
	missing.Guest.FullName = ""
	err = validateDraft(missing, nil)
	assert.EqualError(t, err, "full name and email are required")
}

func TestValidateStayDates(t *testing.T) {
	assert.NoError(t, validateStayDates("2025-06-01", "2025-06-03"))
	assert.EqualError(t, validateStayDates("2025-06-03", "2025-06-01"), "check-out must be after check-in")
	assert.EqualError(t, validateStayDates("2025-06-01", "2025-06-01"), "check-out must be after check-in")
	assert.Error(t, validateStayDates("junk", "2025-06-01"))
}

func TestValidatePaxSkippedWhileCapacityUnknown(t *testing.T) {
	draft := models.BookingDraft{Adults: 5}
	assert.NoError(t, validatePax(draft, nil))

	capacity := 2
	err := validatePax(draft, &capacity)
	assert.EqualError(t, err, "the selected option allows 2 passengers")
}
