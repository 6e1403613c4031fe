package book

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

var ErrResponseBookEntryBlankFields = ErrResponse{100, "the field title must be filled correctly."}
var ErrResponseBookNotFound = ErrResponse{101, "book not found"}
var ErrResponseEntryInvalidJSON = ErrResponse{102, "invalid json request."}
var ErrResponseIdInvalidFormat = ErrResponse{103, "the endpoint is not a valid format ID. Must be /books/{integer id}"}
var ErrResponseRouteNotFound = ErrResponse{104, "route not found"}
var ErrResponseMethodNotAllowed = ErrResponse{105, "method not allowed on this route"}
var ErrResponseFromRepository = ErrResponse{106, "error from the repository: "}
var ErrResponseRequestTimeout = ErrResponse{107, "context deadline exceeded"}
var ErrResponseDocsUnavailable = ErrResponse{108, "api documentation could not be rendered"}
