package ports

import "context"

// MessageConsumer — фоновый потребитель сообщений (альтернативный канал приёма покупок).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
