package chat

import "errors"

var (
	ErrEmptyInput       = errors.New("chat: empty input")
	ErrSessionNotFound  = errors.New("chat: session not found")
	ErrSessionBusy      = errors.New("chat: session is busy")
	ErrConversationDone = errors.New("chat: conversation already finished")
	ErrUnknownOption    = errors.New("chat: unknown option")
	ErrWrongStep        = errors.New("chat: action not allowed at this step")
)
