package notificator

import "context"

// Notificator: канал до оператора (телеграм или ничего)
type Notificator interface {
	Send(ctx context.Context, text string) error
}
