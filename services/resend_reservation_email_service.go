package services

import (
	"fmt"
	"log"
	"time"
)

// ReservationEmailData holds data for reservation confirmation emails
type ReservationEmailData struct {
	CustomerName  string
	CustomerEmail string
	BranchName    string
	BranchAddress string
	PartySize     int
	ReservedFor   time.Time
}

// SendReservationConfirmationEmail emails the customer when a reservation is
// confirmed by staff. Callers should treat failures as non-fatal: the
// reservation is already confirmed in the database.
func (r *ResendClient) SendReservationConfirmationEmail(data ReservationEmailData) error {
	if data.CustomerEmail == "" {
		return fmt.Errorf("customer email is empty")
	}

	htmlBody := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto; padding: 24px;">
			<h2 style="color: #26221f;">Your table is confirmed</h2>
			<p>Hi %s,</p>
			<p>Your reservation at <strong>%s</strong> is confirmed.</p>
			<table style="width: 100%%; margin: 16px 0; font-size: 14px;">
				<tr><td style="color: #79776d;">Date</td><td style="text-align: right;">%s</td></tr>
				<tr><td style="color: #79776d;">Time</td><td style="text-align: right;">%s</td></tr>
				<tr><td style="color: #79776d;">Party size</td><td style="text-align: right;">%d</td></tr>
				<tr><td style="color: #79776d;">Location</td><td style="text-align: right;">%s</td></tr>
			</table>
			<p style="color: #79776d; font-size: 12px;">Need to change anything? Call the restaurant and we'll sort it out.</p>
		</div>`,
		data.CustomerName,
		data.BranchName,
		data.ReservedFor.Format("Monday, Jan 02 2006"),
		data.ReservedFor.Format("15:04"),
		data.PartySize,
		data.BranchAddress)

	subject := fmt.Sprintf("Reservation confirmed — %s", data.BranchName)
	if err := r.send(data.CustomerEmail, subject, htmlBody); err != nil {
		return err
	}

	log.Printf("[resend] reservation confirmation sent to %s", data.CustomerEmail)
	return nil
}
