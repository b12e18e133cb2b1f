package config

type MongoDB struct {
	URI     string `mapstructure:"URI" json:"uri" yaml:"uri"`
	Options string `mapstructure:"OPTIONS" json:"options" yaml:"options"`
	// central database holding tenants, requests and grants
	Database string `mapstructure:"DATABASE" json:"database" yaml:"database"`
	// database holding the per-tenant catalog collections
	CatalogDatabase string `mapstructure:"CATALOG_DATABASE" json:"catalogDatabase" yaml:"catalogDatabase"`
}
