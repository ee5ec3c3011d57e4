// Package models defines the persisted database entities.
package models

import (
	"time"
)

// Asset represents a logical document owned by this system. Every asset is
// backed by a pad on the external editing service; GroupID and PadID are
// assigned by that service at creation and never change. An asset row is
// only written once the remote pad exists.
type Asset struct {
	// ID is the unique identifier for the asset (uuid hex).
	ID string `gorm:"primaryKey;size:64" json:"_id"`
	// Name is the human readable title of the asset.
	Name string `gorm:"size:255;not null" json:"name"`
	// GroupID is the editing service group that owns the pad.
	GroupID string `gorm:"size:255;not null" json:"groupID"`
	// PadID is the editable document on the editing service.
	PadID string `gorm:"size:255;not null" json:"padID"`
	// GroupMapper is the random token mapped idempotently to GroupID.
	GroupMapper string `gorm:"size:64;not null" json:"groupMapper"`
	// CreatedAt is the timestamp when the asset was created (managed by GORM).
	CreatedAt time.Time `json:"createdAt"`
}
