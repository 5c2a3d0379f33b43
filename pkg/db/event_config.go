package db

import (
	"encoding/json"
	"fmt"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

// EventConfig is the team configuration kept in an event's description
type EventConfig struct {
	Teams         int      `json:"teams"`
	MinTeamSize   int      `json:"minTeamSize"`
	MaxTeamSize   int      `json:"maxTeamSize"`
	FairPlay      bool     `json:"fairPlay"`
	GuestRankings []string `json:"guestRankings"`
}

// ParseEventConfig decodes the configuration stored on an event
func ParseEventConfig(description string) (*EventConfig, error) {
	if description == "" {
		return nil, fmt.Errorf("event has no team configuration")
	}

	var cfg EventConfig
	if err := json.Unmarshal([]byte(description), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse event configuration: %w", err)
	}
	return &cfg, nil
}

// Encode returns the JSON form stored in PartyItem.Description
func (c EventConfig) Encode() (string, error) {
	if c.GuestRankings == nil {
		c.GuestRankings = []string{}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode event configuration: %w", err)
	}
	return string(b), nil
}

// TeamConfig converts the stored form into the optimizer's team configuration
func (c EventConfig) TeamConfig() model.TeamConfig {
	return model.TeamConfig{
		TeamCount: c.Teams,
		MinSize:   c.MinTeamSize,
		MaxSize:   c.MaxTeamSize,
		FairPlay:  c.FairPlay,
		Rankings:  c.GuestRankings,
	}
}
