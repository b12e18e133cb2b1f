package dto

type SearchResultDto struct {
	TenantID   int64  `json:"tenantID"`
	ContentRef string `json:"contentRef"`
	Title      string `json:"title"`
	SeasonTag  string `json:"seasonTag,omitempty"`
	Caption    string `json:"caption"`
}

type SearchResponseDto struct {
	Query      string             `json:"query"`
	Results    []*SearchResultDto `json:"results"`
	TenantsHit int                `json:"tenantsHit"`
	Degraded   bool               `json:"degraded,omitempty"`
}
