package tx

import (
	"context"
	"errors"
	"net/http"
)

type key string

const KeyTx = key("tx")

var ErrNoTx = errors.New("no transaction provider in context")

type DbRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DbRepo
}

// WithRepo puts the transaction provider into ctx so TxExecute can find it.
func WithRepo(ctx context.Context, repo DbRepo) context.Context {
	return context.WithValue(ctx, KeyTx, Tx{DbRepo: repo})
}

func TxMiddlewareHTTP(repo DbRepo) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithRepo(r.Context(), repo)))
		})
	}
}

// TxExecute runs cb in a single transaction. The transaction is committed when cb returns nil
// and rolled back otherwise.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok || t.DbRepo == nil {
		return ErrNoTx
	}
	return t.DbRepo.WithTx(ctx, cb)
}
