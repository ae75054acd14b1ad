// Package timezone renders times in the zone named by APP_TIMEZONE.
//
// The zone is resolved on first use and falls back to UTC when the variable is
// empty or names an unknown zone. Todo timestamps leave the service as RFC3339
// strings built with Timestamp:
//
//	res.CreatedAt = timezone.Timestamp(todo.CreatedAt)
package timezone
