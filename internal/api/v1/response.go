package v1

type SendSMSResponse struct {
	MessageID int    `json:"message_id"`
	UserKey   string `json:"user_key"`
	Status    string `json:"status"`
}
