package config

type Transport struct {
	// base URL of the chat platform API the membership gate and notifier call
	BaseURL string `mapstructure:"BASE_URL" json:"baseURL" yaml:"baseURL"`
	// bot username embedded in invitation deep links
	BotName string `mapstructure:"BOT_NAME" json:"botName" yaml:"botName"`
	// deep link prefix, e.g. https://t.me
	LinkBase string `mapstructure:"LINK_BASE" json:"linkBase" yaml:"linkBase"`
	// request timeout in milliseconds
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
}
