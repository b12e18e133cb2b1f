package config

type Catalog struct {
	// actor id of the single superuser, seeded at startup
	SuperuserID int64 `mapstructure:"SUPERUSER_ID" json:"superuserID" yaml:"superuserID"`
	// tenant lease window in days
	LeaseDays int `mapstructure:"LEASE_DAYS" json:"leaseDays" yaml:"leaseDays"`
	// superuser lease = LeaseDays * SuperuserLeaseMultiple
	SuperuserLeaseMultiple int `mapstructure:"SUPERUSER_LEASE_MULTIPLE" json:"superuserLeaseMultiple" yaml:"superuserLeaseMultiple"`
	// minimum normalized query length
	MinQueryLength int `mapstructure:"MIN_QUERY_LENGTH" json:"minQueryLength" yaml:"minQueryLength"`
	// maximum caption length after validation
	MaxCaptionLength int `mapstructure:"MAX_CAPTION_LENGTH" json:"maxCaptionLength" yaml:"maxCaptionLength"`
	// per-call budget for the external membership gate, milliseconds
	GateTimeoutMs int64 `mapstructure:"GATE_TIMEOUT_MS" json:"gateTimeoutMs" yaml:"gateTimeoutMs"`
	// redis TTL for cached gate verdicts, seconds (0 disables the cache)
	GateCacheTTLSec int64 `mapstructure:"GATE_CACHE_TTL_SEC" json:"gateCacheTTLSec" yaml:"gateCacheTTLSec"`
	// lease sweep cron spec (with seconds field); empty disables the sweep
	SweepSpec string `mapstructure:"SWEEP_SPEC" json:"sweepSpec" yaml:"sweepSpec"`
	// fixed-window rate limit for tenancy requests
	RequestLimitCount     int   `mapstructure:"REQUEST_LIMIT_COUNT" json:"requestLimitCount" yaml:"requestLimitCount"`
	RequestLimitWindowSec int64 `mapstructure:"REQUEST_LIMIT_WINDOW_SEC" json:"requestLimitWindowSec" yaml:"requestLimitWindowSec"`
}

// LeaseDaysOrDefault falls back to the 30-day lease the product launched with.
func (c Catalog) LeaseDaysOrDefault() int {
	if c.LeaseDays > 0 {
		return c.LeaseDays
	}
	return 30
}

func (c Catalog) SuperuserLeaseMultipleOrDefault() int {
	if c.SuperuserLeaseMultiple > 0 {
		return c.SuperuserLeaseMultiple
	}
	return 12
}

func (c Catalog) MinQueryLengthOrDefault() int {
	if c.MinQueryLength > 0 {
		return c.MinQueryLength
	}
	return 3
}

func (c Catalog) MaxCaptionLengthOrDefault() int {
	if c.MaxCaptionLength > 0 {
		return c.MaxCaptionLength
	}
	return 200
}
