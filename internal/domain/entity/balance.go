package entity

// RawBalanceRecord is a provider-returned balance prior to normalization.
// RawAmount is an integer in base units, except for providers that only
// return a pre-formatted amount; the formatter passes those through.
type RawBalanceRecord struct {
	Address      string `json:"address"`
	RawAmount    string `json:"rawAmount"`
	Decimals     int    `json:"decimals"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Logo         string `json:"logo,omitempty"`
	PossibleSpam bool   `json:"possibleSpam,omitempty"`
}
