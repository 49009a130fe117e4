package domain

// Error is a business-rule violation. Its message is the user-facing API
// error text and travels verbatim to the GraphQL response; infrastructure
// failures keep using plain errors.
type Error struct {
	Message string
}

func New(message string) *Error {
	return &Error{Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions marks the error as a domain error in the GraphQL response.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "DOMAIN"}
}

// El mensaje del email duplicado se muestra en español; the rest of the
// catalog is in English.
var (
	ErrEmailRegistered   = New("El email ya está registrado")
	ErrEmailTakenByOther = New("email registered by another user")
	ErrAuthorNotFound    = New("author does not exist")
	ErrPostNotFound      = New("post does not exist")
	ErrCommentNotFound   = New("comment does not exist")
	ErrAlreadyLiked      = New("already liked")
	ErrHasNotLiked       = New("has not liked")
)
