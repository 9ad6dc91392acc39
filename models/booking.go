package models

// GuestInfo is the guest contact block sent with every booking mutation.
type GuestInfo struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// BookingData carries the stay portion of a booking request. Meta holds the
// channel/vaultMeta envelope and is shaped by the upstream client, never by
// callers directly.
type BookingData struct {
	CheckIn      string                 `json:"checkIn"`
	CheckOut     string                 `json:"checkOut"`
	TgxHotelCode string                 `json:"tgxHotelCode"`
	Adults       int                    `json:"adults,omitempty"`
	Children     int                    `json:"children,omitempty"`
	RoomID       *string                `json:"roomId"`
	PaymentType  string                 `json:"paymentType,omitempty"`
	Meta         map[string]interface{} `json:"meta,omitempty"`
}

// PaymentCard is the raw card block of the direct (legacy) path.
type PaymentCard struct {
	Type   string     `json:"type"`
	Number string     `json:"number"`
	CVC    string     `json:"CVC"`
	Expire CardExpiry `json:"expire"`
	Holder CardHolder `json:"holder"`
}

type CardExpiry struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type CardHolder struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// BookingDraft is the guest-entered form state submitted for booking.
// PaymentMode selects the gateway path ("stripe", the default) or the
// legacy direct card path ("direct").
type BookingDraft struct {
	OptionRefID  string `json:"optionRefId"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	TgxHotelCode string `json:"tgxHotelCode"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Currency     string `json:"currency"`

	Guest GuestInfo `json:"guest"`

	PaymentMode string `json:"paymentMode,omitempty"`

	// Known pax capacity of the selected option, when the caller already
	// has it. Nil means the orchestrator resolves it via quote.
	NumberOfPax *int `json:"numberOfPax,omitempty"`

	// Gateway path: card already tokenized by the browser.
	PaymentMethodID string `json:"paymentMethodId,omitempty"`

	// Direct path: raw card fields.
	CardType     string `json:"cardType,omitempty"`
	CardNumber   string `json:"cardNumber,omitempty"`
	CardCVC      string `json:"cardCvc,omitempty"`
	CardExpMonth int    `json:"cardExpMonth,omitempty"`
	CardExpYear  int    `json:"cardExpYear,omitempty"`

	// Referring page, forwarded in vault metadata for correlation.
	PageURL string `json:"pageUrl,omitempty"`

	// Caller-supplied vault metadata extras, merged over the defaults.
	VaultExtra map[string]interface{} `json:"vaultExtra,omitempty"`
}

// PaxTotal is the requested passenger count.
func (d BookingDraft) PaxTotal() int {
	return d.Adults + d.Children
}
