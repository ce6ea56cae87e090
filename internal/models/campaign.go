package models

// CampaignID is assigned by the advertising platform and is unique per
// advertiser account. It is never generated locally.
type CampaignID int64

type CampaignType string

const (
	// CampaignTypeSponsoredProducts is currently the only campaign type the
	// campaigns endpoints return.
	CampaignTypeSponsoredProducts CampaignType = "sponsoredProducts"
)

type CampaignTargetingType string

const (
	CampaignTargetingTypeManual CampaignTargetingType = "manual"
	CampaignTargetingTypeAuto   CampaignTargetingType = "auto"
)

type CampaignState string

const (
	CampaignStateEnabled  CampaignState = "enabled"
	CampaignStatePaused   CampaignState = "paused"
	CampaignStateArchived CampaignState = "archived"
)

// CampaignServingStatus is the computed delivery status returned on extended
// campaign reads. It is a different set from SponsoredBrandsServingStatus.
type CampaignServingStatus string

const (
	CampaignServingStatusArchived                 CampaignServingStatus = "CAMPAIGN_ARCHIVED"
	CampaignServingStatusPaused                   CampaignServingStatus = "CAMPAIGN_PAUSED"
	CampaignServingStatusEnabled                  CampaignServingStatus = "CAMPAIGN_STATUS_ENABLED"
	CampaignServingStatusAdvertiserPaymentFailure CampaignServingStatus = "ADVERTISER_PAYMENT_FAILURE"
	CampaignServingStatusOutOfBudget              CampaignServingStatus = "CAMPAIGN_OUT_OF_BUDGET"
	CampaignServingStatusIncomplete               CampaignServingStatus = "CAMPAIGN_INCOMPLETE"
)

// Campaign is the read model returned by list and get endpoints. Any field
// may be omitted by the API depending on the query, so every field is a
// pointer.
type Campaign struct {
	PortfolioID   *PortfolioID           `json:"portfolioId,omitempty"`
	CampaignID    *CampaignID            `json:"campaignId,omitempty"`
	Name          *string                `json:"name,omitempty"`
	CampaignType  *CampaignType          `json:"campaignType,omitempty" validate:"omitempty,oneof=sponsoredProducts"`
	TargetingType *CampaignTargetingType `json:"targetingType,omitempty" validate:"omitempty,oneof=manual auto"`
	State         *CampaignState         `json:"state,omitempty" validate:"omitempty,oneof=enabled paused archived"`
	// DailyBudget is documented as at least 1.00; the platform enforces it.
	DailyBudget *float64 `json:"dailyBudget,omitempty"`
	// StartDate and EndDate are YYYYMMDD strings. See ParseDate.
	StartDate            *string `json:"startDate,omitempty"`
	EndDate              *string `json:"endDate,omitempty"`
	PremiumBidAdjustment *bool   `json:"premiumBidAdjustment,omitempty"`
}

// CampaignExtended adds the computed fields returned by the extended
// endpoints.
type CampaignExtended struct {
	Campaign

	Placement       *string                `json:"placement,omitempty"`
	CreationDate    *EpochMillis           `json:"creationDate,omitempty"`
	LastUpdatedDate *EpochMillis           `json:"lastUpdatedDate,omitempty"`
	ServingStatus   *CampaignServingStatus `json:"servingStatus,omitempty" validate:"omitempty,oneof=CAMPAIGN_ARCHIVED CAMPAIGN_PAUSED CAMPAIGN_STATUS_ENABLED ADVERTISER_PAYMENT_FAILURE CAMPAIGN_OUT_OF_BUDGET CAMPAIGN_INCOMPLETE"`
}

// CampaignResponse acknowledges a single campaign mutation.
type CampaignResponse struct {
	CampaignID CampaignID `json:"campaignId"`
	ResponseStatus
}
