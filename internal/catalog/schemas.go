// Package catalog declares the schemas of the campaign management API and the
// typed decoders built on them.
package catalog

import (
	"sbcatalog/internal/models"
	"sbcatalog/internal/schema"
)

// Scalars and closed sets.
var (
	CampaignID   = schema.Integer("CampaignId")
	CampaignName = schema.String("CampaignName")
	PortfolioID  = schema.Integer("PortfolioId")

	CampaignType = schema.Enum("CampaignType",
		models.CampaignTypeSponsoredProducts,
	)
	CampaignTargetingType = schema.Enum("CampaignTargetingType",
		models.CampaignTargetingTypeManual,
		models.CampaignTargetingTypeAuto,
	)
	CampaignState = schema.Enum("CampaignState",
		models.CampaignStateEnabled,
		models.CampaignStatePaused,
		models.CampaignStateArchived,
	)
	CampaignServingStatus = schema.Enum("CampaignServingStatus",
		models.CampaignServingStatusArchived,
		models.CampaignServingStatusPaused,
		models.CampaignServingStatusEnabled,
		models.CampaignServingStatusAdvertiserPaymentFailure,
		models.CampaignServingStatusOutOfBudget,
		models.CampaignServingStatusIncomplete,
	)
	SponsoredBrandsServingStatus = schema.Enum("SponsoredBrandsServingStatus",
		models.SponsoredBrandsServingStatusAsinNotBuyable,
		models.SponsoredBrandsServingStatusBillingError,
		models.SponsoredBrandsServingStatusEnded,
		models.SponsoredBrandsServingStatusLandingPageNotAvailable,
		models.SponsoredBrandsServingStatusOutOfBudget,
		models.SponsoredBrandsServingStatusPaused,
		models.SponsoredBrandsServingStatusPendingReview,
		models.SponsoredBrandsServingStatusReady,
		models.SponsoredBrandsServingStatusRejected,
		models.SponsoredBrandsServingStatusRunning,
		models.SponsoredBrandsServingStatusScheduled,
		models.SponsoredBrandsServingStatusTerminated,
	)
	BudgetType = schema.Enum("BudgetType",
		models.BudgetTypeLifetime,
		models.BudgetTypeDaily,
	)
	MatchType = schema.Enum("MatchType",
		models.MatchTypeBroad,
		models.MatchTypePhrase,
		models.MatchTypeExact,
	)
	LandingPageType = schema.Enum("LandingPageType",
		models.LandingPageTypeStore,
		models.LandingPageTypeProductList,
		models.LandingPageTypeCustomURL,
		models.LandingPageTypeDetailPage,
	)

	// CampaignDate is a YYYYMMDD string. It is not parsed on decode.
	CampaignDate = schema.String("CampaignDate")
)

// Shared shapes owned by other domains and merged in by intersection.
var (
	ResponseStatus = schema.Intersection("ResponseStatus",
		schema.Strict("ResponseCode", schema.F("code", schema.String("Code"))),
		schema.Partial("ResponseDetails", schema.F("details", schema.String("Details"))),
	)

	ListPagination = schema.Partial("ListPagination",
		schema.F("startIndex", schema.Integer("StartIndex")),
		schema.F("count", schema.Integer("Count")),
	)
)

// Campaign read models.
var (
	Campaign = schema.Partial("Campaign",
		schema.F("portfolioId", PortfolioID),
		schema.F("campaignId", CampaignID),
		schema.F("name", CampaignName),
		schema.F("campaignType", CampaignType),
		schema.F("targetingType", CampaignTargetingType),
		schema.F("state", CampaignState),
		schema.F("dailyBudget", schema.Number("DailyBudget")),
		schema.F("startDate", CampaignDate),
		schema.F("endDate", CampaignDate),
		schema.F("premiumBidAdjustment", schema.Bool("PremiumBidAdjustment")),
	)

	CampaignExtended = schema.Intersection("CampaignExtended",
		Campaign,
		schema.Partial("CampaignComputed",
			schema.F("placement", schema.String("Placement")),
			schema.F("creationDate", schema.DateFromMillis("CreationDate")),
			schema.F("lastUpdatedDate", schema.DateFromMillis("LastUpdatedDate")),
			schema.F("servingStatus", CampaignServingStatus),
		),
	)

	Campaigns         = schema.Array("Campaigns", Campaign)
	CampaignsExtended = schema.Array("CampaignsExtended", CampaignExtended)
)

// Sponsored Brands campaign shapes.
var (
	LandingPage = schema.Strict("LandingPage",
		schema.F("pageType", LandingPageType),
		schema.F("url", schema.String("Url")),
	)

	Creative = schema.Strict("Creative",
		schema.F("brandName", schema.String("BrandName")),
		schema.F("brandLogoAssetID", schema.String("BrandLogoAssetID")),
		schema.F("headline", schema.String("Headline")),
		schema.F("asins", schema.Array("Asins", schema.String("Asin"), schema.MaxItems(models.MaxCreativeAsins))),
	)

	Keyword = schema.Intersection("Keyword",
		schema.Strict("KeywordCore",
			schema.F("keywordText", schema.String("KeywordText")),
			schema.F("matchType", MatchType),
		),
		schema.Partial("KeywordBid",
			schema.F("bid", schema.Number("Bid")),
		),
	)

	SponsoredBrandsCampaign = schema.Intersection("SponsoredBrandsCampaign",
		schema.Readonly(schema.Partial("SponsoredBrandsCampaignReadOnly",
			schema.F("campaignId", CampaignID),
			schema.F("servingStatus", SponsoredBrandsServingStatus),
		)),
		schema.Strict("SponsoredBrandsCampaignCore",
			schema.F("name", CampaignName),
			schema.F("budget", schema.Number("Budget")),
			schema.F("budgetType", BudgetType),
			schema.F("startDate", CampaignDate),
			schema.F("endDate", CampaignDate),
			schema.F("state", CampaignState),
			schema.F("brandEntityId", schema.String("BrandEntityId")),
			schema.F("portfolioId", PortfolioID),
			schema.F("bidOptimization", schema.Bool("BidOptimization")),
			// Documented range -99 to +99.99, checked by the platform.
			schema.F("bidMultiplier", schema.Number("BidMultiplier")),
			schema.F("landingPage", LandingPage),
			schema.F("creative", Creative),
			schema.F("keywords", schema.Array("Keywords", Keyword)),
		),
	)

	SponsoredBrandsCampaignUpdate = schema.Intersection("SponsoredBrandsCampaignUpdate",
		schema.Strict("SponsoredBrandsCampaignUpdateKey",
			schema.F("campaignId", CampaignID),
		),
		schema.Partial("SponsoredBrandsCampaignUpdateFields",
			schema.F("portfolioId", PortfolioID),
			schema.F("budget", schema.Number("Budget")),
			schema.F("startDate", CampaignDate),
			schema.F("endDate", CampaignDate),
			schema.F("state", CampaignState),
			schema.F("bidOptimization", schema.Bool("BidOptimization")),
			schema.F("bidMultiplier", schema.Number("BidMultiplier")),
		),
	)
)

// Mutation responses.
var (
	CampaignResponse = schema.Intersection("CampaignResponse",
		schema.Strict("CampaignResponseKey", schema.F("campaignId", CampaignID)),
		ResponseStatus,
	)

	AdGroupResponse = schema.Intersection("AdGroupResponse",
		schema.Partial("AdGroupResponseKey", schema.F("adGroupId", schema.Integer("AdGroupId"))),
		ResponseStatus,
	)

	KeywordResponse = schema.Intersection("KeywordResponse",
		schema.Partial("KeywordResponseKey", schema.F("keywordId", schema.Integer("KeywordId"))),
		ResponseStatus,
	)

	SponsoredBrandsCampaignResponse = schema.Intersection("SponsoredBrandsCampaignResponse",
		schema.Strict("SponsoredBrandsCampaignResponseKey", schema.F("campaignId", CampaignID)),
		ResponseStatus,
		schema.Partial("SponsoredBrandsCampaignResponseChildren",
			schema.F("adGroupResponses", schema.Array("AdGroupResponses", AdGroupResponse)),
			schema.F("keywordResponses", schema.Array("KeywordResponses", KeywordResponse)),
		),
	)

	CampaignResponses                = schema.Array("CampaignResponses", CampaignResponse)
	SponsoredBrandsCampaignResponses = schema.Array("SponsoredBrandsCampaignResponses", SponsoredBrandsCampaignResponse)
)

// ListCampaignsParams is the list query: pagination plus campaign filters.
var ListCampaignsParams = schema.Intersection("ListCampaignsParams",
	ListPagination,
	schema.Partial("CampaignFilters",
		schema.F("stateFilter", schema.Array("StateFilter", CampaignState)),
		schema.F("name", CampaignName),
		schema.F("portfolioIdFilter", schema.Array("PortfolioIdFilter", PortfolioID)),
		schema.F("campaignIdFilter", schema.Array("CampaignIdFilter", CampaignID)),
	),
)
