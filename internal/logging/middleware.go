package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware gives every operation a fresh LogData, logs Handler.<op>.Start
// before the handler runs and Handler.<op>.Complete with the accumulated
// fields after, including the total duration.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := ctx.Operation().OperationID
		log.Infof("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		ctx = huma.WithContext(ctx, WithLogData(ctx.Context(), logData))

		endTimer := logData.AddTiming("duration")
		next(ctx)
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
