package smsgateway

// MessageResponse subset of the gateway's message resource
type MessageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// ErrorResponse error body returned by the gateway
type ErrorResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}
