package panel

import (
	"errors"

	"github.com/at-ishikawa/yesno/internal/answer"
)

// GenericErrorMessage is shown when a failure carries no message of its own.
const GenericErrorMessage = "An error occurred"

// DisplayMessage converts a fetch failure into the text shown to the user.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}

	var message string
	var statusErr *answer.StatusError
	var transportErr *answer.TransportError
	var parseErr *answer.ParseError
	switch {
	case errors.As(err, &statusErr):
		return answer.FetchFailedMessage
	case errors.As(err, &transportErr):
		message = causeMessage(transportErr.Err)
	case errors.As(err, &parseErr):
		message = causeMessage(parseErr.Err)
	default:
		message = err.Error()
	}

	if message == "" {
		return GenericErrorMessage
	}
	return message
}

func causeMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
