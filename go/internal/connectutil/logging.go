package connectutil

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLoggingInterceptor logs every unary call with its outcome and duration.
func NewLoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			code := "ok"
			level := zerolog.InfoLevel
			if err != nil {
				c := connect.CodeOf(err)
				code = c.String()
				if c == connect.CodeInternal || c == connect.CodeUnknown {
					level = zerolog.ErrorLevel
				} else {
					level = zerolog.WarnLevel
				}
			}

			evt := log.WithLevel(level).
				Str("procedure", req.Spec().Procedure).
				Str("code", code).
				Dur("duration", time.Since(start))
			if err != nil {
				evt = evt.Err(err)
			}
			evt.Msg("rpc")
			return resp, err
		}
	}
}
