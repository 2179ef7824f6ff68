package service

import (
	"time"

	"github.com/esteria/esteria-go/pkg/esteria"
)

type SendSMSCommand struct {
	Sender        string
	ToNumber      string
	Text          string
	ScheduledAt   *time.Time
	DLRURL        string
	ExpiryMinutes *int
	Flags         esteria.Flags
	UserKey       string
	Encoding      *esteria.Encoding
}

type SendSMSResult struct {
	MessageID int
	UserKey   string
}
