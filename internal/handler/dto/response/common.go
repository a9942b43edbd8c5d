package response

// OKResponse is the bare success envelope, also used as the device trust verdict.
type OKResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	OK    bool   `json:"ok" example:"false"`
	Error string `json:"error"`
}
