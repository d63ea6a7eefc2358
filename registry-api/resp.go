package registryapi

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

func NewResponse(code int, msg string) Response {
	return Response{Code: code, Msg: msg}
}

func (r Response) WithData(data interface{}) Response {
	r.Data = data
	return r
}

var (
	// OK result
	OK = NewResponse(0, "success")

	// ErrParam param errors
	ErrParam    = NewResponse(10001, "Param parse failed")
	ErrNotFound = NewResponse(10002, "Environment not found")

	// ErrInvalid validation errors
	ErrInvalid = NewResponse(20001, "Config invalid")
)

// Violation is one invalid field reported by the validate endpoint.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}
