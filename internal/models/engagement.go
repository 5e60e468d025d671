package models

import "time"

type CounterKind string

const (
	CounterPlays CounterKind = "plays"
	CounterLikes CounterKind = "likes"
)

type EngagementCounter struct {
	AssetName   string     `json:"name" db:"asset_name"`
	Count       int64      `json:"count" db:"count"`
	LastEventAt *time.Time `json:"last_event_at,omitempty" db:"last_event_at"`
}

type LikeAction string

const (
	ActionLike   LikeAction = "like"
	ActionUnlike LikeAction = "unlike"
)
