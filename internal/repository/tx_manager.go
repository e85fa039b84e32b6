package repository

import "context"

// TxRepos bundles the repositories that participate in one database
// transaction. Checkout and the payment callback are the two users.
type TxRepos interface {
	CartItems() CartItemRepository
	MenuItems() MenuItemRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	StatusEvents() OrderStatusEventRepository
	MpesaTransactions() MpesaTransactionRepository
}

// TransactionManager hides begin/commit/rollback from the usecases.
// The callback either commits everything fn wrote or nothing.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
