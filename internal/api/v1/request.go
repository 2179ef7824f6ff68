package v1

import "time"

type SendSMSRequest struct {
	To            string       `json:"to" validate:"required"`
	Text          string       `json:"text" validate:"required"`
	Sender        string       `json:"sender"`
	ScheduledAt   *time.Time   `json:"scheduled_at"`
	DLRURL        string       `json:"dlr_url" validate:"omitempty,url"`
	ExpiryMinutes *int         `json:"expiry_minutes" validate:"omitempty,min=1"`
	Flags         FlagsRequest `json:"flags"`
	UserKey       string       `json:"user_key"`
	Encoding      string       `json:"encoding" validate:"omitempty,oneof=default eightbit udh"`
}

type FlagsRequest struct {
	Debug   bool `json:"debug"`
	NoLog   bool `json:"nolog"`
	Flash   bool `json:"flash"`
	Test    bool `json:"test"`
	NoBL    bool `json:"nobl"`
	Convert bool `json:"convert"`
}
