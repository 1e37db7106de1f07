package models

import "time"

const (
	CategorySejour  = "sejour"
	CategoryFete    = "fete"
	CategoryPiscine = "piscine"
	CategorySpecial = "special"

	VillaStatusActive   = "active"
	VillaStatusInactive = "inactive"

	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"

	UserRoleAdmin = "admin"
)

// Categories lists the recognized villa categories in display order.
var Categories = []string{CategorySejour, CategoryFete, CategoryPiscine, CategorySpecial}

func KnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// PricingDetails is the structured rate table reconciled against the price
// sheet. PartyRates maps a guest-count tier to an absolute total price, not a
// surcharge delta.
type PricingDetails struct {
	BasePrice  float64            `bson:"base_price" json:"base_price"`
	Weekend    float64            `bson:"weekend,omitempty" json:"weekend,omitempty"`
	Week       float64            `bson:"week,omitempty" json:"week,omitempty"`
	HighSeason float64            `bson:"high_season,omitempty" json:"high_season,omitempty"`
	PartyRates map[string]float64 `bson:"party_rates,omitempty" json:"party_rates,omitempty"`
	Details    string             `bson:"details,omitempty" json:"details,omitempty"`
}

type Villa struct {
	ID             string          `bson:"_id,omitempty" json:"id"`
	Name           string          `bson:"name" json:"name"`
	NameNormalized string          `bson:"name_normalized" json:"-"`
	Location       string          `bson:"location" json:"location"`
	Category       string          `bson:"category" json:"category"`
	Price          float64         `bson:"price" json:"price"`
	PricingDetails *PricingDetails `bson:"pricing_details,omitempty" json:"pricing_details,omitempty"`
	Guests         int             `bson:"guests" json:"guests"`
	GuestsDetail   string          `bson:"guests_detail,omitempty" json:"guests_detail,omitempty"`
	Gallery        []string        `bson:"gallery,omitempty" json:"gallery,omitempty"`
	Features       string          `bson:"features,omitempty" json:"features,omitempty"`
	ServicesFull   string          `bson:"services_full,omitempty" json:"services_full,omitempty"`
	Description    string          `bson:"description,omitempty" json:"description,omitempty"`
	CSVIntegrated  bool            `bson:"csv_integrated" json:"csv_integrated"`
	Status         string          `bson:"status" json:"status"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updated_at"`
}

type Reservation struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	VillaID       string    `bson:"villa_id" json:"villa_id"`
	VillaName     string    `bson:"villa_name" json:"villa_name"`
	CustomerName  string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone string    `bson:"customer_phone" json:"customer_phone"`
	CheckinDate   string    `bson:"checkin_date" json:"checkin_date"`
	CheckoutDate  string    `bson:"checkout_date" json:"checkout_date"`
	GuestsCount   int       `bson:"guests_count" json:"guests_count"`
	Message       string    `bson:"message,omitempty" json:"message,omitempty"`
	TotalPrice    float64   `bson:"total_price" json:"total_price"`
	Status        string    `bson:"status" json:"status"`
	Warnings      []string  `bson:"warnings,omitempty" json:"warnings,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

type ContactMessage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
