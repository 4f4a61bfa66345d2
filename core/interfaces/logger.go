package interfaces

// Logger is the structured logger every service and middleware receives
// through Dependencies. Fields are flattened into the log entry.
//
//	logger.Info("Hero selected", map[string]interface{}{
//		"box1":   "podcast",
//		"reason": result.Reason,
//	})
//
//	logger.Warn("News feed failed, skipping", map[string]interface{}{
//		"source": source.Name,
//		"error":  err.Error(),
//	})
type Logger interface {
	// Debug is for per-request and cache-hit detail
	Debug(msg string, fields map[string]interface{})

	Info(msg string, fields map[string]interface{})

	// Warn marks degraded results such as a skipped feed or a slow request
	Warn(msg string, fields map[string]interface{})

	Error(msg string, fields map[string]interface{})
}
