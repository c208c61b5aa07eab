package models

import "time"

// TimeModel stamps documents in local wall-clock time at second precision,
// matching the naive timestamps the API returns.
type TimeModel struct {
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (m *TimeModel) SetCreatedAtUpdatedAt() {
	now := stamp()
	m.CreatedAt = now
	m.UpdatedAt = now
}

func (m *TimeModel) SetUpdatedAt() {
	m.UpdatedAt = stamp()
}

func stamp() time.Time {
	return time.Now().Truncate(time.Second)
}
