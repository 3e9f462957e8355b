package dao

// ErrorResponse is the failure envelope every endpoint answers with.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) DataResponse {
	return DataResponse{Success: true, Data: data}
}

func Fail(message string, details ...string) ErrorResponse {
	if details == nil {
		details = []string{}
	}
	return ErrorResponse{Success: false, Message: message, Details: details}
}
