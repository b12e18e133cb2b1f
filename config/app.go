package config

type App struct {
	// runtime environment: production / test / development
	Env string `mapstructure:"ENV" json:"env" yaml:"env"`
	// listen port
	Port uint32 `mapstructure:"PORT" json:"port" yaml:"port"`
	// service name
	Name string `mapstructure:"NAME" json:"name" yaml:"name"`
	// service version
	Version string `mapstructure:"VERSION" json:"version" yaml:"version"`
	// shared secret: signs session tokens and authenticates the transport bridge
	SecretKey      string `mapstructure:"SECRET_KEY" json:"secret_key" yaml:"secret_key"`
	SwaggerEnabled bool   `mapstructure:"SWAGGER_ENABLED" json:"swagger_enabled" yaml:"swagger_enabled"`
}
