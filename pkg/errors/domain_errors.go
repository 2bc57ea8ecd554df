package errors

var (
	// Domain errors — used in usecase/repository
	ErrUsernameTaken       = AlreadyExists("username is already taken")
	ErrEmailTaken          = AlreadyExists("email is already registered")
	ErrUserNotFound        = NotFound("user not found")
	ErrInvalidUsername     = InvalidArg("username must be 3-20 chars, letters, numbers and underscores only")
	ErrInvalidCredentials  = Unauthorized("wrong email or password")
	ErrPostNotFound        = NotFound("post not found")
	ErrCommentNotFound     = NotFound("comment not found")
	ErrConversationMissing = NotFound("conversation not found")
	ErrSelfFollow          = InvalidArg("you cannot follow yourself")
	ErrSelfMessage         = InvalidArg("you cannot send a message to yourself")
	ErrEmptyMessage        = InvalidArg("message cannot be empty")
	ErrMessageTooLong      = InvalidArg("message cannot exceed 300 characters")
	ErrCaptionTooLong      = InvalidArg("caption cannot exceed 300 characters")
	ErrCommentTooLong      = InvalidArg("comment cannot exceed 300 characters")
	ErrImageRequired       = InvalidArg("image is required")
	ErrImageTooLarge       = InvalidArg("image size cannot exceed 5MB")
	ErrImageBadType        = InvalidArg("only .jpg, .jpeg and .png formats are supported")
)

func ErrSendFailed(cause error) error {
	return Wrap(CodeInternal, "failed to send message", cause)
}

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}
