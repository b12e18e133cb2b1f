package dto

import (
	"time"

	"mediadex/internal/pkg/request"
)

type TenantResponseDto struct {
	ID          int64     `json:"id"`
	Superuser   bool      `json:"superuser"`
	Active      bool      `json:"active"`
	GrantedAt   time.Time `json:"grantedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	ChannelRef  string    `json:"channelRef,omitempty"`
	LeaseStatus string    `json:"leaseStatus"`
}

type SetChannelDto struct {
	ChannelRef string `json:"channelRef" binding:"required"`
}

type ChannelResponseDto struct {
	ChannelRef string `json:"channelRef"`
}

type CatalogSizeResponseDto struct {
	Count int64 `json:"count"`
}

type SubmitContentDto struct {
	ContentRef string `json:"contentRef" binding:"required"`
	// Caption carries "Title|SeasonTag"; the tag part is optional
	Caption string `json:"caption" binding:"required"`
}

type SubmitContentResponseDto struct {
	Outcome          string `json:"outcome"`
	Title            string `json:"title"`
	SeasonTag        string `json:"seasonTag,omitempty"`
	FormattedCaption string `json:"formattedCaption"`
}

type GrantTenantDto struct {
	// LeaseDays overrides the configured lease window when positive
	LeaseDays int `json:"leaseDays,omitempty"`
}

type InvitationResponseDto struct {
	Token    string `json:"token"`
	DeepLink string `json:"deepLink"`
}

// GetMessages supplies the operator-facing wording for submit failures.
func (SubmitContentDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"ContentRef.required": "contentRef is required",
		"Caption.required":    "caption is required, format: Title|SeasonTag",
	}
}
