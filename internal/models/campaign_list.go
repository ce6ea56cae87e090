package models

import "net/url"

// ListCampaignsParams is the query accepted by the list campaigns endpoints:
// the generic pagination fields plus optional campaign filters. Filters with
// several values are sent comma separated.
type ListCampaignsParams struct {
	ListPagination

	StateFilter       []CampaignState `json:"stateFilter,omitempty" validate:"omitempty,dive,oneof=enabled paused archived"`
	Name              *string         `json:"name,omitempty"`
	PortfolioIDFilter []PortfolioID   `json:"portfolioIdFilter,omitempty"`
	CampaignIDFilter  []CampaignID    `json:"campaignIdFilter,omitempty"`
}

// Query merges the pagination parameters with the filters that are set.
func (p ListCampaignsParams) Query() url.Values {
	q := p.ListPagination.Query()
	if len(p.StateFilter) > 0 {
		q.Set("stateFilter", joinStrings(p.StateFilter))
	}
	if p.Name != nil {
		q.Set("name", *p.Name)
	}
	if len(p.PortfolioIDFilter) > 0 {
		q.Set("portfolioIdFilter", joinInts(p.PortfolioIDFilter))
	}
	if len(p.CampaignIDFilter) > 0 {
		q.Set("campaignIdFilter", joinInts(p.CampaignIDFilter))
	}
	return q
}
