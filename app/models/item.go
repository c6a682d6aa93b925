package models

import "time"

// Item is a generic named entry used by the demo item API.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemCreate is the payload accepted by the item creation endpoints.
type ItemCreate struct {
	Name        string `json:"name" form:"name" validate:"required,min=1"`
	Description string `json:"description" form:"description"`
}
