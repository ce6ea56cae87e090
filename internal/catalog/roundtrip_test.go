package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbcatalog/internal/models"
	"sbcatalog/internal/schema"
)

// roundTrip decodes data, encodes the typed value back to JSON and decodes it
// again; both typed values must be equal.
func roundTrip[T any](t *testing.T, dec func([]byte) (T, error), data string) {
	t.Helper()
	first, err := dec([]byte(data))
	require.NoError(t, err)
	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	second, err := dec(encoded)
	require.NoError(t, err, "re-decoding %s", encoded)
	assert.Equal(t, first, second)
}

func TestRoundTrip(t *testing.T) {
	t.Run("Campaign", func(t *testing.T) {
		roundTrip(t, DecodeCampaign, `{"portfolioId": 3, "campaignId": 123, "name": "Summer Sale", "state": "enabled",
			"campaignType": "sponsoredProducts", "targetingType": "manual", "dailyBudget": 50.25,
			"startDate": "20240601", "endDate": "20240831", "premiumBidAdjustment": false}`)
	})
	t.Run("CampaignExtended", func(t *testing.T) {
		roundTrip(t, DecodeCampaignExtended, `{"campaignId": 1, "name": "x", "placement": "top",
			"creationDate": 1700000000123, "lastUpdatedDate": 1700000999000, "servingStatus": "CAMPAIGN_PAUSED"}`)
	})
	t.Run("SponsoredBrandsCampaign", func(t *testing.T) {
		roundTrip(t, DecodeSponsoredBrandsCampaign, fullCampaign)
	})
	t.Run("SponsoredBrandsCampaignUpdate", func(t *testing.T) {
		roundTrip(t, DecodeSponsoredBrandsCampaignUpdate, `{"campaignId": 5, "portfolioId": 8, "budget": 10,
			"startDate": "20240101", "endDate": "20240201", "state": "archived", "bidOptimization": true, "bidMultiplier": 99.99}`)
	})
	t.Run("Keyword", func(t *testing.T) {
		roundTrip(t, DecodeKeyword, `{"keywordText": "running shoes", "matchType": "phrase", "bid": 0.5}`)
	})
	t.Run("CampaignResponse", func(t *testing.T) {
		roundTrip(t, DecodeCampaignResponse, `{"campaignId": 9, "code": "SUCCESS", "details": "created"}`)
	})
	t.Run("SponsoredBrandsCampaignResponse", func(t *testing.T) {
		roundTrip(t, DecodeSponsoredBrandsCampaignResponse, `{"campaignId": 77, "code": "SUCCESS",
			"adGroupResponses": [{"adGroupId": 501, "code": "SUCCESS"}],
			"keywordResponses": [{"keywordId": 8, "code": "SUCCESS"}, {"code": "INVALID_ARGUMENT", "details": "bad"}]}`)
	})
	t.Run("ListCampaignsParams", func(t *testing.T) {
		roundTrip(t, DecodeListCampaignsParams, `{"startIndex": 10, "count": 5, "stateFilter": ["archived"],
			"name": "Sale", "portfolioIdFilter": [1, 2], "campaignIdFilter": [3]}`)
	})
	t.Run("Campaigns", func(t *testing.T) {
		roundTrip(t, DecodeCampaigns, `[{"campaignId": 1, "name": "a", "state": "paused"}, {}, {"dailyBudget": 12.5}]`)
	})
	t.Run("CampaignsExtended", func(t *testing.T) {
		roundTrip(t, DecodeCampaignsExtended, `[{"campaignId": 1, "creationDate": 1700000000123, "servingStatus": "CAMPAIGN_OUT_OF_BUDGET"},
			{"name": "b", "lastUpdatedDate": 1600000000000}]`)
	})
	t.Run("CampaignResponses", func(t *testing.T) {
		roundTrip(t, DecodeCampaignResponses, `[{"campaignId": 1, "code": "SUCCESS"}, {"campaignId": 2, "code": "INVALID_ARGUMENT", "details": "bad budget"}]`)
	})
	t.Run("SponsoredBrandsCampaignResponses", func(t *testing.T) {
		roundTrip(t, DecodeSponsoredBrandsCampaignResponses, `[{"campaignId": 1, "code": "SUCCESS",
			"adGroupResponses": [{"adGroupId": 10, "code": "SUCCESS"}]},
			{"campaignId": 2, "code": "SERVER_ERROR", "keywordResponses": [{"code": "INVALID_ARGUMENT"}]}]`)
	})
	t.Run("empty lists", func(t *testing.T) {
		roundTrip(t, DecodeCampaigns, `[]`)
		roundTrip(t, DecodeSponsoredBrandsCampaignResponses, `[]`)
	})
}

func validCampaign() models.SponsoredBrandsCampaign {
	return models.SponsoredBrandsCampaign{
		Name:          "Brand push",
		Budget:        100,
		BudgetType:    models.BudgetTypeLifetime,
		StartDate:     models.FormatDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:       "20240630",
		State:         models.CampaignStateEnabled,
		BrandEntityID: "ENTITY1",
		PortfolioID:   42,
		BidMultiplier: 10,
		LandingPage:   models.LandingPage{PageType: models.LandingPageTypeProductList, URL: "https://example.com"},
		Creative: models.Creative{
			BrandName:        "Acme",
			BrandLogoAssetID: "asset-1",
			Headline:         "Run further",
			Asins:            []string{"B000000001"},
		},
		Keywords: []models.Keyword{{KeywordText: "running shoes", MatchType: models.MatchTypeExact}},
	}
}

func TestEncodeSponsoredBrandsCampaign(t *testing.T) {
	data, err := EncodeSponsoredBrandsCampaign(validCampaign())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "20240501", raw["startDate"])
	assert.NotContains(t, raw, "campaignId", "a locally built campaign has no id")
	assert.NotContains(t, raw, "servingStatus")

	decoded, err := DecodeSponsoredBrandsCampaign(data)
	require.NoError(t, err)
	assert.Equal(t, validCampaign(), decoded)
}

func TestEncodeSponsoredBrandsCampaignNilListsBecomeEmpty(t *testing.T) {
	c := validCampaign()
	c.Keywords = nil
	c.Creative.Asins = nil

	data, err := EncodeSponsoredBrandsCampaign(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"keywords":[]`)
	assert.Contains(t, string(data), `"asins":[]`)
}

func TestEncodeRejectsInvalidTypedValues(t *testing.T) {
	c := validCampaign()
	c.BudgetType = "weekly"
	c.Keywords = append(c.Keywords, models.Keyword{KeywordText: "x", MatchType: "fuzzy"})
	c.Creative.Asins = []string{"A1", "A2", "A3", "A4"}

	_, err := EncodeSponsoredBrandsCampaign(c)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make(map[string]string)
	for _, f := range verr.Fields {
		fields[f.Field] = f.Rule
	}
	assert.Equal(t, "oneof", fields["budgetType"])
	assert.Equal(t, "oneof", fields["keywords[1].matchType"])
	assert.Equal(t, "max", fields["creative.asins"])
}

func TestEncodeSponsoredBrandsCampaignUpdate(t *testing.T) {
	state := models.CampaignStatePaused
	data, err := EncodeSponsoredBrandsCampaignUpdate(models.SponsoredBrandsCampaignUpdate{CampaignID: 5, State: &state})
	require.NoError(t, err)
	assert.JSONEq(t, `{"campaignId":5,"state":"paused"}`, string(data))

	bad := models.CampaignState("deleted")
	_, err = EncodeSponsoredBrandsCampaignUpdate(models.SponsoredBrandsCampaignUpdate{CampaignID: 5, State: &bad})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestEncodeListCampaignsParams(t *testing.T) {
	count := 50
	p := models.ListCampaignsParams{
		ListPagination: models.ListPagination{Count: &count},
		StateFilter:    []models.CampaignState{models.CampaignStateEnabled},
	}
	data, err := EncodeListCampaignsParams(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":50,"stateFilter":["enabled"]}`, string(data))
}

func TestRegistryCoversEveryEntity(t *testing.T) {
	for _, name := range []string{"Campaign", "CampaignExtended", "SponsoredBrandsCampaign", "SponsoredBrandsCampaignUpdate",
		"CampaignResponse", "SponsoredBrandsCampaignResponse", "ListCampaignsParams"} {
		e, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, e.Schema.Name())
	}

	entries := Entries()
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Name, entries[i].Name)
	}

	e, _ := Lookup("Keyword")
	v, err := e.Decode([]byte(`{"keywordText":"a","matchType":"exact"}`))
	require.NoError(t, err)
	assert.IsType(t, models.Keyword{}, v)

	_, err = e.Decode([]byte(`{}`))
	var de *schema.DecodeError
	assert.ErrorAs(t, err, &de)
}
