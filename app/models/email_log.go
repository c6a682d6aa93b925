package models

import "time"

// EmailInvitationLog records one attempted invitation email. The log is
// append-only: rows are inserted when a batch of invitations is sent and
// never modified afterwards.
type EmailInvitationLog struct {
	ID             int64        `json:"id"`
	RecipientEmail string       `json:"recipient_email" validate:"required,email"`
	FormLink       string       `json:"form_link" validate:"required"`
	Status         InviteStatus `json:"status"`
	SendTime       time.Time    `json:"send_time"`
}
