package models

import "encoding/json"

type BudgetType string

const (
	BudgetTypeLifetime BudgetType = "lifetime"
	BudgetTypeDaily    BudgetType = "daily"
)

type MatchType string

const (
	MatchTypeBroad  MatchType = "broad"
	MatchTypePhrase MatchType = "phrase"
	MatchTypeExact  MatchType = "exact"
)

type LandingPageType string

const (
	LandingPageTypeStore       LandingPageType = "store"
	LandingPageTypeProductList LandingPageType = "productList"
	LandingPageTypeCustomURL   LandingPageType = "customUrl"
	LandingPageTypeDetailPage  LandingPageType = "detailPage"
)

// SponsoredBrandsServingStatus is the lifecycle state of a Sponsored Brands
// campaign. It is unrelated to CampaignServingStatus.
type SponsoredBrandsServingStatus string

const (
	SponsoredBrandsServingStatusAsinNotBuyable          SponsoredBrandsServingStatus = "asinNotBuyable"
	SponsoredBrandsServingStatusBillingError            SponsoredBrandsServingStatus = "billingError"
	SponsoredBrandsServingStatusEnded                   SponsoredBrandsServingStatus = "ended"
	SponsoredBrandsServingStatusLandingPageNotAvailable SponsoredBrandsServingStatus = "landingPageNotAvailable"
	SponsoredBrandsServingStatusOutOfBudget             SponsoredBrandsServingStatus = "outOfBudget"
	SponsoredBrandsServingStatusPaused                  SponsoredBrandsServingStatus = "paused"
	SponsoredBrandsServingStatusPendingReview           SponsoredBrandsServingStatus = "pendingReview"
	SponsoredBrandsServingStatusReady                   SponsoredBrandsServingStatus = "ready"
	SponsoredBrandsServingStatusRejected                SponsoredBrandsServingStatus = "rejected"
	SponsoredBrandsServingStatusRunning                 SponsoredBrandsServingStatus = "running"
	SponsoredBrandsServingStatusScheduled               SponsoredBrandsServingStatus = "scheduled"
	SponsoredBrandsServingStatusTerminated              SponsoredBrandsServingStatus = "terminated"
)

// MaxCreativeAsins is the number of products a creative can feature.
const MaxCreativeAsins = 3

type LandingPage struct {
	PageType LandingPageType `json:"pageType" validate:"oneof=store productList customUrl detailPage"`
	URL      string          `json:"url"`
}

type Creative struct {
	BrandName        string   `json:"brandName"`
	BrandLogoAssetID string   `json:"brandLogoAssetID"`
	Headline         string   `json:"headline"`
	Asins            []string `json:"asins" validate:"max=3"`
}

type Keyword struct {
	KeywordText string    `json:"keywordText"`
	MatchType   MatchType `json:"matchType" validate:"oneof=broad phrase exact"`
	Bid         *float64  `json:"bid,omitempty"`
}

// SponsoredBrandsCampaign is the full campaign shape used to create a
// campaign and returned when reading one back. CampaignID and ServingStatus
// are assigned by the platform and can only be read.
type SponsoredBrandsCampaign struct {
	campaignID    *CampaignID
	servingStatus *SponsoredBrandsServingStatus

	Name       string        `json:"name"`
	Budget     float64       `json:"budget"`
	BudgetType BudgetType    `json:"budgetType" validate:"oneof=lifetime daily"`
	StartDate  string        `json:"startDate"`
	EndDate    string        `json:"endDate"`
	State      CampaignState `json:"state" validate:"oneof=enabled paused archived"`

	BrandEntityID string      `json:"brandEntityId"`
	PortfolioID   PortfolioID `json:"portfolioId"`

	// BidOptimization lets the platform set bids automatically. When it is
	// false BidMultiplier applies; documented range is -99 to +99.99.
	BidOptimization bool    `json:"bidOptimization"`
	BidMultiplier   float64 `json:"bidMultiplier"`

	LandingPage LandingPage `json:"landingPage"`
	Creative    Creative    `json:"creative"`
	Keywords    []Keyword   `json:"keywords" validate:"dive"`
}

// CampaignID returns the platform-assigned id, if the value was decoded from
// a response that carried one.
func (c SponsoredBrandsCampaign) CampaignID() (CampaignID, bool) {
	if c.campaignID == nil {
		return 0, false
	}
	return *c.campaignID, true
}

// ServingStatus returns the platform-computed status, if present.
func (c SponsoredBrandsCampaign) ServingStatus() (SponsoredBrandsServingStatus, bool) {
	if c.servingStatus == nil {
		return "", false
	}
	return *c.servingStatus, true
}

type sponsoredBrandsCampaignFields SponsoredBrandsCampaign

type sponsoredBrandsCampaignReadOnly struct {
	CampaignID    *CampaignID                   `json:"campaignId,omitempty"`
	ServingStatus *SponsoredBrandsServingStatus `json:"servingStatus,omitempty" validate:"omitempty,oneof=asinNotBuyable billingError ended landingPageNotAvailable outOfBudget paused pendingReview ready rejected running scheduled terminated"`
}

// MarshalJSON writes nil keyword and ASIN lists as empty arrays, since both
// members are required by the platform.
func (c SponsoredBrandsCampaign) MarshalJSON() ([]byte, error) {
	fields := sponsoredBrandsCampaignFields(c)
	if fields.Keywords == nil {
		fields.Keywords = []Keyword{}
	}
	if fields.Creative.Asins == nil {
		fields.Creative.Asins = []string{}
	}
	return json.Marshal(struct {
		sponsoredBrandsCampaignReadOnly
		sponsoredBrandsCampaignFields
	}{c.readOnly(), fields})
}

func (c *SponsoredBrandsCampaign) UnmarshalJSON(data []byte) error {
	aux := struct {
		sponsoredBrandsCampaignReadOnly
		*sponsoredBrandsCampaignFields
	}{sponsoredBrandsCampaignFields: (*sponsoredBrandsCampaignFields)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.campaignID = aux.CampaignID
	c.servingStatus = aux.ServingStatus
	return nil
}

func (c SponsoredBrandsCampaign) readOnly() sponsoredBrandsCampaignReadOnly {
	return sponsoredBrandsCampaignReadOnly{CampaignID: c.campaignID, ServingStatus: c.servingStatus}
}

// SponsoredBrandsCampaignUpdate is the mutable subset of a Sponsored Brands
// campaign. Nil fields are left unchanged by the platform.
type SponsoredBrandsCampaignUpdate struct {
	CampaignID CampaignID `json:"campaignId"`

	PortfolioID     *PortfolioID   `json:"portfolioId,omitempty"`
	Budget          *float64       `json:"budget,omitempty"`
	StartDate       *string        `json:"startDate,omitempty"`
	EndDate         *string        `json:"endDate,omitempty"`
	State           *CampaignState `json:"state,omitempty" validate:"omitempty,oneof=enabled paused archived"`
	BidOptimization *bool          `json:"bidOptimization,omitempty"`
	BidMultiplier   *float64       `json:"bidMultiplier,omitempty"`
}

// AdGroupResponse is the result for one ad group inside a campaign response.
// AdGroupID is absent when the ad group could not be created.
type AdGroupResponse struct {
	AdGroupID *int64 `json:"adGroupId,omitempty"`
	ResponseStatus
}

// KeywordResponse is the result for one keyword inside a campaign response.
type KeywordResponse struct {
	KeywordID *int64 `json:"keywordId,omitempty"`
	ResponseStatus
}

// SponsoredBrandsCampaignResponse is the result of creating or updating a
// Sponsored Brands campaign. Ad group and keyword results keep their own
// statuses; a campaign-level success can carry child failures.
type SponsoredBrandsCampaignResponse struct {
	CampaignID CampaignID `json:"campaignId"`
	ResponseStatus

	AdGroupResponses []AdGroupResponse `json:"adGroupResponses,omitempty"`
	KeywordResponses []KeywordResponse `json:"keywordResponses,omitempty"`
}

// FailedAdGroups returns the ad group results that did not succeed.
func (r SponsoredBrandsCampaignResponse) FailedAdGroups() []AdGroupResponse {
	var out []AdGroupResponse
	for _, ag := range r.AdGroupResponses {
		if !ag.Succeeded() {
			out = append(out, ag)
		}
	}
	return out
}

// FailedKeywords returns the keyword results that did not succeed.
func (r SponsoredBrandsCampaignResponse) FailedKeywords() []KeywordResponse {
	var out []KeywordResponse
	for _, kw := range r.KeywordResponses {
		if !kw.Succeeded() {
			out = append(out, kw)
		}
	}
	return out
}
