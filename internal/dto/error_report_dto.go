package dto

// ErrorReportRequest carries an error captured by the client so it can
// be forwarded to the operator by email.
type ErrorReportRequest struct {
	Message string `json:"message" validate:"required"`
	Source  string `json:"source"`
}
