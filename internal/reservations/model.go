package reservations

// CreateRequest is the public booking payload.
type CreateRequest struct {
	VillaID       string `json:"villa_id" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"required,phone"`
	CheckinDate   string `json:"checkin_date" validate:"required,date"`
	CheckoutDate  string `json:"checkout_date" validate:"required,date"`
	GuestsCount   int    `json:"guests_count" validate:"required,gte=1"`
	Message       string `json:"message" validate:"max=2000"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

// Quote is the computed side of a reservation before persistence.
type Quote struct {
	Nights     int      `json:"nights"`
	TotalPrice float64  `json:"total_price"`
	Warnings   []string `json:"warnings,omitempty"`
}
