package intent

import (
	"encoding/json"
	"strings"

	"movie-assistant/internal/common/logger"
	"movie-assistant/internal/common/validation"
)

// directiveSchema is the contract the classifier's reply must satisfy before
// the pipeline trusts it: a function name plus string-valued parameters.
var directiveSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"function_name"},
	"properties": map[string]interface{}{
		"function_name": map[string]interface{}{
			"type": "string",
		},
		"parameters": map[string]interface{}{
			"type": "object",
			"additionalProperties": map[string]interface{}{
				"type": "string",
			},
		},
	},
}

// Parser converts the classifier's raw text output into a validated Intent.
// Parse is a total function: malformed input of any kind degrades to the
// unsupported_request fallback and never errors.
type Parser struct {
	logger logger.Logger
}

func NewParser(log logger.Logger) *Parser {
	return &Parser{
		logger: log.With(map[string]interface{}{"component": "intent-parser"}),
	}
}

// Fallback returns the intent every undecodable classifier reply collapses
// to. Also used when the classifier call itself fails.
func (p *Parser) Fallback() Intent {
	return Intent{
		Action:     ActionUnsupported,
		Parameters: map[string]string{},
	}
}

// Parse strips code-fence markup, decodes the directive, and validates its
// shape. The classifier is untrusted: every failure path returns Fallback().
func (p *Parser) Parse(raw string) Intent {
	cleaned := stripCodeFences(raw)

	var document map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &document); err != nil {
		p.logger.Warn("classifier reply was not valid JSON", map[string]interface{}{
			"reply": truncate(raw, 200),
			"error": err.Error(),
		})
		return p.Fallback()
	}

	if err := validation.ValidateAgainstSchema(document, directiveSchema); err != nil {
		p.logger.Warn("classifier reply failed schema validation", map[string]interface{}{
			"error": err.Error(),
		})
		return p.Fallback()
	}

	var parsed Intent
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		p.logger.Warn("classifier directive could not be decoded", map[string]interface{}{
			"error": err.Error(),
		})
		return p.Fallback()
	}

	if parsed.Action == "" {
		return p.Fallback()
	}
	if parsed.Parameters == nil {
		parsed.Parameters = map[string]string{}
	}

	return parsed
}

// stripCodeFences removes surrounding markdown fence markers the model may
// wrap its JSON in.
func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
