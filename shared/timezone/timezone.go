package timezone

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"todolist/config"
	"todolist/shared/constant"
)

const defaultTimezone = "UTC"

var (
	location     *time.Location
	locationOnce sync.Once
)

func appLocation() *time.Location {
	locationOnce.Do(func() {
		location = loadLocation(config.Get().App.Timezone)
	})

	return location
}

// loadLocation falls back to UTC on an empty or unknown name.
func loadLocation(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		name = defaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(appLocation())
}

// Format renders t in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(appLocation()).Format(layout)
}

// Timestamp renders t the way todo timestamps travel over the wire.
func Timestamp(t time.Time) string {
	return Format(t, constant.DateFormat)
}
