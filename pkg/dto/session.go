package dto

// UpdateSessionRequest carries the picks made so far in the offer builder.
// Empty fields leave the previous pick in place.
type UpdateSessionRequest struct {
	Map         string `json:"map,omitempty"`
	Environment string `json:"environment,omitempty"`
	Layout      string `json:"layout,omitempty"`
}

type SessionResponse struct {
	ChannelID   string   `json:"channel_id"`
	Map         string   `json:"map,omitempty"`
	Environment string   `json:"environment,omitempty"`
	Layout      string   `json:"layout,omitempty"`
	Complete    bool     `json:"complete"`
	Objectives  []string `json:"objectives,omitempty"`
}
