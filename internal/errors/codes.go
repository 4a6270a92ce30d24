package errors

// Error codes for the tern front end.
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Syntax errors (lexer and parser)
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: Input that no lexer rule recognizes
	ErrorLexical = "E0100"

	// E0101: Input ended while a token was still required
	ErrorMissingToken = "E0101"

	// E0102: A specific token was required and another one was found
	ErrorMismatchedToken = "E0102"

	// E0103: Token cannot start or continue the current construct
	ErrorUnexpectedToken = "E0103"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorLexical:
		return "Input is not a valid token"
	case ErrorMissingToken:
		return "Source ended before the construct was complete"
	case ErrorMismatchedToken:
		return "A different token was required here"
	case ErrorUnexpectedToken:
		return "Token is not allowed here"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Syntax"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
