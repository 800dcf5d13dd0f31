package models

type Notification struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}
