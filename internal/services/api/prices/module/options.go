package module

import (
	"time"

	"housepricing/internal/adapters/ssb"
	"housepricing/internal/platform/config"
)

// Options controls the upstream client and the observation sink
type Options struct {
	SSB ssb.Options
	// Throttle caps concurrent searches; zero disables it
	Throttle int
	// Sink stores fetched cells in ClickHouse when it is enabled
	Sink        bool
	SinkTimeout time.Duration
}

// FromConfig reads SSB_* and PRICES_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("SSB_")
	pc := cfg.Prefix("PRICES_")
	return Options{
		SSB: ssb.Options{
			BaseURL:    sc.MayURL("BASE_URL", "https://data.ssb.no/api"),
			APIVersion: sc.MayString("API_VERSION", "v0"),
			Table:      sc.MayString("TABLE", "07241"),
			UserAgent:  sc.MayString("USER_AGENT", ""),
			Timeout:    sc.MayDuration("TIMEOUT", 15*time.Second),
		},
		Throttle:    pc.MayInt("THROTTLE", 0),
		Sink:        pc.MayBool("SINK", true),
		SinkTimeout: pc.MayDuration("SINK_TIMEOUT", 3*time.Second),
	}
}
