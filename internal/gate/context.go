package gate

import "context"

type exchangeErrorKey struct{}

// ContextWithExchangeError returns a copy of ctx carrying err.
func ContextWithExchangeError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, exchangeErrorKey{}, err)
}

// ExchangeError returns the failure the gate recorded for the request, or nil
// when the exchange succeeded or did not happen.
func ExchangeError(ctx context.Context) error {
	err, _ := ctx.Value(exchangeErrorKey{}).(error)
	return err
}
