package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@savoria.restaurant" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// send posts one email payload to the Resend API
func (r *ResendClient) send(to, subject, htmlBody string) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      to,
		"subject": subject,
		"html":    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] API error %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	return nil
}

// AdminInviteEmailData holds data for admin invite email
type AdminInviteEmailData struct {
	AdminName  string
	AdminEmail string
	InviteLink string
}

// SendAdminInviteEmail sends an admin invite email via Resend
func (r *ResendClient) SendAdminInviteEmail(data AdminInviteEmailData) error {
	htmlBody := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto; padding: 24px;">
			<h2 style="color: #26221f;">Savoria Admin Dashboard</h2>
			<p>Hi %s,</p>
			<p>You've been invited to join the Savoria admin dashboard. Click the button below to create your account. The link expires in 48 hours.</p>
			<p style="margin: 32px 0;">
				<a href="%s" style="background: #26221f; color: #ffffff; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Accept Invitation</a>
			</p>
			<p style="color: #79776d; font-size: 12px;">If you weren't expecting this invite you can ignore this email.</p>
		</div>`,
		data.AdminName, data.InviteLink)

	if err := r.send(data.AdminEmail, "You've been invited to join Savoria Admin", htmlBody); err != nil {
		return err
	}

	log.Printf("[resend] invite email sent to %s", data.AdminEmail)
	return nil
}
