// internal/assistant/render.go
package assistant

import (
	"fmt"
	"strings"

	"movie-assistant/internal/common/errors"
)

const unsupportedMessage = "This request is not supported. Please ask about popular movies, movie details, or actor credits."

// Render reduces a workflow outcome to the stable user-facing message.
// Every failure kind maps to a rendered string; nothing escapes as an error.
func Render(result string, err error) string {
	if err == nil {
		return result
	}

	se := errors.AsStandard(err)
	if se == nil {
		return "Something went wrong processing your request."
	}

	switch se.Code {
	case errors.ErrCodeNotFound:
		kind, _ := se.Metadata["kind"].(string)
		switch kind {
		case "movie":
			return fmt.Sprintf("No movie titled '%s'.", se.Details)
		case "actor":
			return fmt.Sprintf("No actor named '%s'.", se.Details)
		}
		return fmt.Sprintf("Nothing matched '%s'.", se.Details)

	case errors.ErrCodeCatalogUnavailable:
		return fmt.Sprintf("Error during API call: %s", se.Details)

	case errors.ErrCodeMissingParameter:
		// "movie_name" reads as "movie name" in the reply.
		name := strings.ReplaceAll(se.Details, "_", " ")
		return fmt.Sprintf("Could not extract the %s from your request.", name)

	case errors.ErrCodeUnsupportedAction:
		// One message for the sentinel and for arbitrary unknown names; the
		// underlying kind stays distinguishable through Details.
		return unsupportedMessage

	default:
		return "Something went wrong processing your request."
	}
}
