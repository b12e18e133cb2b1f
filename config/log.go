package config

type Log struct {
	Level string `mapstructure:"LEVEL" json:"level" yaml:"level"`
}
