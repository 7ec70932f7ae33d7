package dto

import "github.com/google/uuid"

type RegisterCasterRequest struct {
	Name       string `json:"name"`
	ChannelURL string `json:"channel_url"`
}

type CasterResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	ChannelURL string    `json:"channel_url"`
}

type AddStreamRequest struct {
	Lang string `json:"lang"`
}
