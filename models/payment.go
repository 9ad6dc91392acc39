package models

import "time"

// PaymentIntentResult is the platform's response to intent creation. It is
// consumed immediately by the card-confirmation step and never persisted.
type PaymentIntentResult struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	BookingRef      string `json:"bookingRef"`
}

// BookingConfirmation is the terminal artifact of a successful booking.
type BookingConfirmation struct {
	BookingID  string                 `json:"bookingId"`
	BookingRef string                 `json:"bookingRef,omitempty"`
	Status     string                 `json:"status,omitempty"`
	Booking    map[string]interface{} `json:"booking,omitempty"`
}

// BookingReceipt is the audit record persisted after a confirmed booking.
type BookingReceipt struct {
	ReceiptID    string              `bson:"receiptId" json:"receiptId"`
	BookingID    string              `bson:"bookingId" json:"bookingId"`
	TenantDomain string              `bson:"tenantDomain" json:"tenantDomain"`
	GuestEmail   string              `bson:"guestEmail,omitempty" json:"guestEmail,omitempty"`
	Confirmation BookingConfirmation `bson:"confirmation" json:"confirmation"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
}

// ReceiptPayload is the asynq task payload for receipt delivery.
type ReceiptPayload struct {
	BookingID    string `json:"bookingId"`
	TenantDomain string `json:"tenantDomain"`
	GuestEmail   string `json:"guestEmail,omitempty"`
	GuestName    string `json:"guestName,omitempty"`
}
