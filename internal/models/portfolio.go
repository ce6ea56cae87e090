package models

// PortfolioID identifies a portfolio, a grouping of campaigns owned by the
// portfolios domain.
type PortfolioID int64
