package entities

import "slices"

type Channel struct {
	Name     string   `json:"name" bson:"name"`
	Schedule string   `json:"schedule" bson:"schedule"`
	Keywords []string `json:"keywords" bson:"keywords"`
}

// Entity is a dashboard configuration record, unique by EntityName.
type Entity struct {
	EntityName string    `json:"EntityName" bson:"EntityName"`
	Purpose    string    `json:"Purpose" bson:"Purpose"`
	Domain     string    `json:"Domain" bson:"Domain"`
	Channels   []Channel `json:"Channels" bson:"Channels"`
}

// ChannelIndex returns the position of the named channel or -1.
func (e *Entity) ChannelIndex(name string) int {
	return slices.IndexFunc(e.Channels, func(c Channel) bool { return c.Name == name })
}

// EntityRecord is the SQLite row for an Entity.
type EntityRecord struct {
	ID         string    `gorm:"primaryKey;size:36"`
	EntityName string    `gorm:"index"`
	Purpose    string
	Domain     string
	Channels   []Channel `gorm:"serializer:json"`
	CreatedAt  int64     `gorm:"autoCreateTime"`
	UpdatedAt  int64     `gorm:"autoUpdateTime"`
}

func (r EntityRecord) Entity() Entity {
	return Entity{EntityName: r.EntityName, Purpose: r.Purpose, Domain: r.Domain, Channels: r.Channels}
}
