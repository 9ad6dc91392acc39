package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedTextsFromPlainString(t *testing.T) {
	var hotel HotelRecord
	err := json.Unmarshal([]byte(`{"name":"Hotel Sol","descriptions":"A quiet beach hotel"}`), &hotel)
	assert.NoError(t, err)
	assert.Equal(t, "A quiet beach hotel", hotel.Descriptions.First())
}

func TestLocalizedTextsFromList(t *testing.T) {
	var hotel HotelRecord
	raw := `{"name":"Hotel Sol","descriptions":[{"text":"Un hotel tranquilo","language":"es"},{"text":"A quiet hotel","language":"en"}]}`
	err := json.Unmarshal([]byte(raw), &hotel)
	assert.NoError(t, err)
	assert.Len(t, hotel.Descriptions, 2)
	assert.Equal(t, "Un hotel tranquilo", hotel.Descriptions.First())
	assert.Equal(t, "en", hotel.Descriptions[1].Language)
}

func TestLocalizedTextsEmpty(t *testing.T) {
	var l LocalizedTexts
	assert.Equal(t, "", l.First())
}

func TestDisplayPricePrefersUserPrice(t *testing.T) {
	opt := AvailabilityOption{Price: 100, PriceUser: 120.5}
	assert.Equal(t, 120.5, opt.DisplayPrice())

	opt = AvailabilityOption{Price: 100}
	assert.Equal(t, float64(100), opt.DisplayPrice())
}

func TestPaxTotal(t *testing.T) {
	draft := BookingDraft{Adults: 2, Children: 1}
	assert.Equal(t, 3, draft.PaxTotal())
}
