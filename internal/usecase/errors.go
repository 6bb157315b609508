package usecase

import (
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
)

// APIError is a failed Bot API call as the platform reports it.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: %d %s", e.Code, e.Description)
}

func badRequest(format string, args ...any) *APIError {
	return &APIError{
		Code:        http.StatusBadRequest,
		Description: "Bad Request: " + fmt.Sprintf(format, args...),
	}
}

// AsAPIError reports whether err carries an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

const (
	descReplyNotFound      = "message to be replied not found"
	descForwardNotFound    = "message to forward not found"
	descCopyNotFound       = "message to copy not found"
	descEditNotFound       = "message to edit not found"
	descDeleteNotFound     = "message to delete not found"
	descPinNotFound        = "message to pin not found"
	descUnpinNotFound      = "message to unpin not found"
	descProtectedContent   = "message has protected content and can't be forwarded"
	descProtectedCopy      = "message has protected content and can't be copied"
	descNoTextToEdit       = "there is no text in the message to edit"
	descNoCaptionToEdit    = "there is no caption in the message to edit"
	descNoCaptionToCopy    = "message to copy can't have a caption"
	descEmptyText          = "message text is empty"
	descChatNotFound       = "chat not found"
	descUserNotFound       = "user not found"
	descInvalidFileID      = "invalid file_id"
	descInvalidQueryID     = "query is too old and response timeout expired or query ID is invalid"
	descMediaGroupSize     = "media group must include 2-10 items"
	descInvalidDiceEmoji   = "invalid dice emoji"
	descPollOptionsCount   = "poll must have 2-10 options"
	descMissingMedia       = "there is no %s in the request"
	descMediaGroupItemKind = "unsupported media group item type %q"
)
