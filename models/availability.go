package models

// SearchParams are the stay parameters of an availability search.
type SearchParams struct {
	CheckIn  string `json:"checkIn" form:"checkIn"`
	CheckOut string `json:"checkOut" form:"checkOut"`
	Adults   int    `json:"adults" form:"adults"`
	Children int    `json:"children" form:"children"`
	Currency string `json:"currency" form:"currency"`
	Language string `json:"language" form:"language"`
}

// AvailabilityOption is one bookable offer returned by search. The rate key
// doubles as the optionRefId used by the booking flow.
type AvailabilityOption struct {
	RateKey     string     `json:"rateKey"`
	HotelCode   string     `json:"hotelCode,omitempty"`
	Price       float64    `json:"price,omitempty"`
	PriceUser   float64    `json:"priceUser,omitempty"`
	Currency    string     `json:"currency,omitempty"`
	Board       string     `json:"board,omitempty"`
	Refundable  bool       `json:"refundable,omitempty"`
	NumberOfPax int        `json:"numberOfPax,omitempty"`
	Rooms       []RoomLine `json:"rooms,omitempty"`
}

// RoomLine is one constituent room of a rate option.
type RoomLine struct {
	Code        string  `json:"code"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// AvailabilityResult wraps a search result set.
type AvailabilityResult struct {
	Options []AvailabilityOption `json:"options"`
}

// DisplayPrice prefers the user-currency price over the raw price.
func (o AvailabilityOption) DisplayPrice() float64 {
	if o.PriceUser != 0 {
		return o.PriceUser
	}
	return o.Price
}
