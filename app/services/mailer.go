package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// inviteClient is shared by every send; invitation batches are small and
// sequential, so one client with a generous timeout is enough.
var inviteClient = &http.Client{Timeout: 30 * time.Second}

// SendInviteEmail posts the recipient and form link to the invitation
// webhook. Success is any 2xx status with a parseable JSON body; anything
// else is a failure for the caller to log. Sends are never retried here.
func SendInviteEmail(webhookURL, recipient, formLink string) error {
	if webhookURL == "" {
		return fmt.Errorf("invitation webhook URL is not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"email": recipient,
		"link":  formLink,
	})
	if err != nil {
		return err
	}

	resp, err := inviteClient.Post(webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("could not decode webhook response as JSON: %w", err)
	}
	return nil
}
