package model

import "time"

// Skill is a coaching skill a coach can be tagged with.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
