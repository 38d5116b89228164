package memory

import "context"

// TxManager заглушка транзакций для хранилища в памяти.
// Атомарность вставки обеспечивает сам BookingStore.
type TxManager struct{}

func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
