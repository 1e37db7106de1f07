package notifications

import (
	"bytes"
	"html/template"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/stay"
)

const reservationConfirmationTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Bonjour {{.Name}},</p>
  <p>Votre demande de reservation a bien ete enregistree. Voici les details :</p>
  <ul>
    <li>Villa : {{.VillaName}}</li>
    <li>Arrivee : {{.CheckinDate}}</li>
    <li>Depart : {{.CheckoutDate}}</li>
    {{if .Nights}}<li>Nuits : {{.Nights}}</li>{{end}}
    <li>Voyageurs : {{.GuestsCount}}</li>
    <li>Prix total : {{.TotalPrice}} EUR</li>
    <li>Numero de reservation : {{.ReservationID}}</li>
  </ul>
  <p>Notre equipe vous contactera pour confirmer la disponibilite et les modalites de paiement.</p>
  <p>Merci de votre confiance.</p>
</body>
</html>`

var reservationConfirmationTmpl = template.Must(template.New("reservation_confirmation").Parse(reservationConfirmationTemplate))

type reservationConfirmationData struct {
	Name          string
	VillaName     string
	CheckinDate   string
	CheckoutDate  string
	Nights        int
	GuestsCount   int
	TotalPrice    float64
	ReservationID string
}

func buildReservationConfirmationHTML(reservation models.Reservation) (string, error) {
	nights, err := stay.Nights(reservation.CheckinDate, reservation.CheckoutDate)
	if err != nil {
		nights = 0
	}
	data := reservationConfirmationData{
		Name:          reservation.CustomerName,
		VillaName:     reservation.VillaName,
		CheckinDate:   reservation.CheckinDate,
		CheckoutDate:  reservation.CheckoutDate,
		Nights:        nights,
		GuestsCount:   reservation.GuestsCount,
		TotalPrice:    reservation.TotalPrice,
		ReservationID: reservation.ID,
	}
	var buf bytes.Buffer
	if err := reservationConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
