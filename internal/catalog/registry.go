package catalog

import (
	"sort"

	"sbcatalog/internal/schema"
)

// Direction tells which way a payload travels relative to the platform.
type Direction string

const (
	DirectionRead     Direction = "read"
	DirectionWrite    Direction = "write"
	DirectionQuery    Direction = "query"
	DirectionResponse Direction = "response"
)

// Entry describes one published schema and its typed decoder.
type Entry struct {
	Name        string        `json:"name"`
	Direction   Direction     `json:"direction"`
	Description string        `json:"description"`
	Schema      schema.Schema `json:"-"`

	decode func([]byte) (any, error)
}

// Decode runs the entry's typed decoder.
func (e Entry) Decode(data []byte) (any, error) {
	return e.decode(data)
}

func typed[T any](fn func([]byte) (T, error)) func([]byte) (any, error) {
	return func(data []byte) (any, error) {
		v, err := fn(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

var entries = map[string]Entry{}

func register(e Entry) {
	entries[e.Name] = e
}

func init() {
	register(Entry{Name: "Campaign", Direction: DirectionRead, Schema: Campaign,
		Description: "campaign read model; every field optional", decode: typed(DecodeCampaign)})
	register(Entry{Name: "Campaigns", Direction: DirectionRead, Schema: Campaigns,
		Description: "list of campaign read models", decode: typed(DecodeCampaigns)})
	register(Entry{Name: "CampaignExtended", Direction: DirectionRead, Schema: CampaignExtended,
		Description: "campaign with computed placement, dates and serving status", decode: typed(DecodeCampaignExtended)})
	register(Entry{Name: "CampaignsExtended", Direction: DirectionRead, Schema: CampaignsExtended,
		Description: "list of extended campaigns", decode: typed(DecodeCampaignsExtended)})
	register(Entry{Name: "Keyword", Direction: DirectionWrite, Schema: Keyword,
		Description: "keyword text and match type with optional bid", decode: typed(DecodeKeyword)})
	register(Entry{Name: "SponsoredBrandsCampaign", Direction: DirectionWrite, Schema: SponsoredBrandsCampaign,
		Description: "full Sponsored Brands campaign; strict", decode: typed(DecodeSponsoredBrandsCampaign)})
	register(Entry{Name: "SponsoredBrandsCampaignUpdate", Direction: DirectionWrite, Schema: SponsoredBrandsCampaignUpdate,
		Description: "mutable subset of a Sponsored Brands campaign; strict", decode: typed(DecodeSponsoredBrandsCampaignUpdate)})
	register(Entry{Name: "CampaignResponse", Direction: DirectionResponse, Schema: CampaignResponse,
		Description: "single campaign mutation result", decode: typed(DecodeCampaignResponse)})
	register(Entry{Name: "CampaignResponses", Direction: DirectionResponse, Schema: CampaignResponses,
		Description: "list of campaign mutation results", decode: typed(DecodeCampaignResponses)})
	register(Entry{Name: "SponsoredBrandsCampaignResponse", Direction: DirectionResponse, Schema: SponsoredBrandsCampaignResponse,
		Description: "campaign mutation result with per ad group and keyword statuses", decode: typed(DecodeSponsoredBrandsCampaignResponse)})
	register(Entry{Name: "SponsoredBrandsCampaignResponses", Direction: DirectionResponse, Schema: SponsoredBrandsCampaignResponses,
		Description: "list of Sponsored Brands campaign mutation results", decode: typed(DecodeSponsoredBrandsCampaignResponses)})
	register(Entry{Name: "ListCampaignsParams", Direction: DirectionQuery, Schema: ListCampaignsParams,
		Description: "pagination and campaign filters for list requests", decode: typed(DecodeListCampaignsParams)})
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, bool) {
	e, ok := entries[name]
	return e, ok
}

// Entries returns every registered entry sorted by name.
func Entries() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
