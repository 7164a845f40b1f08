package response

// Error codes
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeReferenceViolation = "REFERENCE_VIOLATION"
	ErrCodeConcurrency        = "CONCURRENCY_CONFLICT"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// Response is the JSON envelope for every API reply
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorData  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorData describes a failed request
type ErrorData struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError points a message at one input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Meta carries pagination information
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Success wraps data in a successful response
func Success(data interface{}) *Response {
	return &Response{Success: true, Data: data}
}

// Paginated wraps a page of data with its pagination metadata
func Paginated(data interface{}, page, perPage int, total int64) *Response {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return &Response{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

// Error builds an error response
func Error(code, message string) *Response {
	return &Response{
		Success: false,
		Error:   &ErrorData{Code: code, Message: message},
	}
}

// ValidationFailed builds a field-scoped validation error response
func ValidationFailed(message string, fields []FieldError) *Response {
	return &Response{
		Success: false,
		Error:   &ErrorData{Code: ErrCodeValidation, Message: message, Fields: fields},
	}
}

// BadRequest builds a 400 response body
func BadRequest(message string) *Response {
	return Error(ErrCodeBadRequest, message)
}

// NotFound builds a 404 response body
func NotFound(message string) *Response {
	return Error(ErrCodeNotFound, message)
}

// Unauthorized builds a 401 response body
func Unauthorized(message string) *Response {
	return Error(ErrCodeUnauthorized, message)
}

// InternalError builds a 500 response body
func InternalError(message string) *Response {
	return Error(ErrCodeInternal, message)
}
