package models

import "errors"

// Domain errors shared by repositories, services and handlers.
var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrRequiredFields    = errors.New("please fill in all fields")
	ErrInvalidLanguage   = errors.New("invalid language")
	ErrInvalidLevel      = errors.New("invalid level")
	ErrInvalidAge        = errors.New("invalid age")
	ErrInvalidTransition = errors.New("invalid view transition")
	ErrInvalidView       = errors.New("invalid view")
	ErrEmptyMessage      = errors.New("message is empty")
	ErrChatClosed        = errors.New("chat is not open")
	ErrMessageNotFound   = errors.New("message not found")
	ErrSpeechUnsupported = errors.New("speech is not supported")
	ErrKeyNotFound       = errors.New("key not found")
)
