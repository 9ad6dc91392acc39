package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"stayfront/models"
)

const dateLayout = "2006-01-02"

// validateDraft runs every pre-network check. Capacity is the option's
// known pax capacity when available; the pax check is skipped while the
// capacity is still unknown.
func validateDraft(draft models.BookingDraft, capacity *int) error {
	if strings.TrimSpace(draft.OptionRefID) == "" {
		return errors.New("optionRefId is required")
	}
	if strings.TrimSpace(draft.Guest.FullName) == "" || strings.TrimSpace(draft.Guest.Email) == "" {
		return errors.New("full name and email are required")
	}
	if err := validateStayDates(draft.CheckIn, draft.CheckOut); err != nil {
		return err
	}
	return validatePax(draft, capacity)
}

func validateStayDates(checkIn, checkOut string) error {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return fmt.Errorf("invalid check-in date %q", checkIn)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return fmt.Errorf("invalid check-out date %q", checkOut)
	}
	if !out.After(in) {
		return errors.New("check-out must be after check-in")
	}
	return nil
}

func validatePax(draft models.BookingDraft, capacity *int) error {
	if capacity == nil {
		return nil
	}
	if draft.PaxTotal() != *capacity {
		return fmt.Errorf("the selected option allows %d passengers", *capacity)
	}
	return nil
}

// splitHolderName splits a full name on the first space into holder name
// and surname, defaulting either half to "Guest".
func splitHolderName(fullName string) models.CardHolder {
	parts := strings.Fields(strings.TrimSpace(fullName))
	holder := models.CardHolder{Name: "Guest", Surname: "Guest"}
	if len(parts) > 0 {
		holder.Name = parts[0]
	}
	if len(parts) > 1 {
		holder.Surname = strings.Join(parts[1:], " ")
	}
	return holder
}
