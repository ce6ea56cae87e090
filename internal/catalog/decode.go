package catalog

import (
	"encoding/json"
	"fmt"

	"sbcatalog/internal/models"
	"sbcatalog/internal/schema"
)

// decode checks data against s and only then unmarshals it into T, so a
// typed value is never built from input the schema rejects.
func decode[T any](s schema.Schema, data []byte) (T, error) {
	var out T
	if _, err := schema.Parse(s, data); err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", s.Name(), err)
	}
	return out, nil
}

// encode validates a typed request value, serializes it and checks the bytes
// against s, so outgoing bodies satisfy the same contract as incoming ones.
func encode[T any](s schema.Schema, v T) ([]byte, error) {
	if err := models.Validate(v); err != nil {
		return nil, fmt.Errorf("encode %s: %w", s.Name(), err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", s.Name(), err)
	}
	if _, err := schema.Parse(s, data); err != nil {
		return nil, err
	}
	return data, nil
}

func DecodeCampaign(data []byte) (models.Campaign, error) {
	return decode[models.Campaign](Campaign, data)
}

func DecodeCampaigns(data []byte) ([]models.Campaign, error) {
	return decode[[]models.Campaign](Campaigns, data)
}

func DecodeCampaignExtended(data []byte) (models.CampaignExtended, error) {
	return decode[models.CampaignExtended](CampaignExtended, data)
}

func DecodeCampaignsExtended(data []byte) ([]models.CampaignExtended, error) {
	return decode[[]models.CampaignExtended](CampaignsExtended, data)
}

func DecodeKeyword(data []byte) (models.Keyword, error) {
	return decode[models.Keyword](Keyword, data)
}

func DecodeSponsoredBrandsCampaign(data []byte) (models.SponsoredBrandsCampaign, error) {
	return decode[models.SponsoredBrandsCampaign](SponsoredBrandsCampaign, data)
}

func DecodeSponsoredBrandsCampaignUpdate(data []byte) (models.SponsoredBrandsCampaignUpdate, error) {
	return decode[models.SponsoredBrandsCampaignUpdate](SponsoredBrandsCampaignUpdate, data)
}

func DecodeCampaignResponse(data []byte) (models.CampaignResponse, error) {
	return decode[models.CampaignResponse](CampaignResponse, data)
}

func DecodeCampaignResponses(data []byte) ([]models.CampaignResponse, error) {
	return decode[[]models.CampaignResponse](CampaignResponses, data)
}

func DecodeSponsoredBrandsCampaignResponse(data []byte) (models.SponsoredBrandsCampaignResponse, error) {
	return decode[models.SponsoredBrandsCampaignResponse](SponsoredBrandsCampaignResponse, data)
}

func DecodeSponsoredBrandsCampaignResponses(data []byte) ([]models.SponsoredBrandsCampaignResponse, error) {
	return decode[[]models.SponsoredBrandsCampaignResponse](SponsoredBrandsCampaignResponses, data)
}

func DecodeListCampaignsParams(data []byte) (models.ListCampaignsParams, error) {
	return decode[models.ListCampaignsParams](ListCampaignsParams, data)
}

// EncodeSponsoredBrandsCampaign builds the body of a create request.
func EncodeSponsoredBrandsCampaign(c models.SponsoredBrandsCampaign) ([]byte, error) {
	return encode(SponsoredBrandsCampaign, c)
}

// EncodeSponsoredBrandsCampaignUpdate builds the body of an update request.
func EncodeSponsoredBrandsCampaignUpdate(u models.SponsoredBrandsCampaignUpdate) ([]byte, error) {
	return encode(SponsoredBrandsCampaignUpdate, u)
}

// EncodeListCampaignsParams checks list parameters and returns them as JSON.
// Use ListCampaignsParams.Query for the query string form.
func EncodeListCampaignsParams(p models.ListCampaignsParams) ([]byte, error) {
	return encode(ListCampaignsParams, p)
}
