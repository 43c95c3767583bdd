package listing

import "time"

// PropertyType enumerates the kinds of property an owner can submit.
type PropertyType string

const (
	TypeFlat  PropertyType = "Flat"
	TypePG    PropertyType = "PG"
	TypeHouse PropertyType = "House"
)

// Status of a submitted listing. Every listing starts Pending; approval
// happens out of band, no endpoint here flips it.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
)

// PropertyListing is an owner-submitted property awaiting approval.
type PropertyListing struct {
	ID          int64        `json:"id" gorm:"primaryKey"`
	OwnerName   string       `json:"owner_name" gorm:"not null"`
	Contact     string       `json:"contact" gorm:"not null"`
	Type        PropertyType `json:"type" gorm:"not null"`
	City        string       `json:"city" gorm:"not null;index"`
	Area        string       `json:"area" gorm:"not null"`
	Description *string      `json:"description,omitempty"`
	Status      Status       `json:"status" gorm:"not null;default:'Pending'"`
	Timestamp   time.Time    `json:"timestamp" gorm:"autoCreateTime"`
}

func (PropertyListing) TableName() string { return "property_listings" }

// SavedListing is a bookmarked snapshot of a listing. It carries its own copy
// of the listing fields and has no foreign key, so it survives the source
// listing changing or disappearing.
type SavedListing struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ListingID string    `json:"listing_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null;default:'Unknown Property'"`
	Price     int       `json:"price" gorm:"not null;default:0"`
	Area      string    `json:"area" gorm:"not null;default:'Unknown Area'"`
	City      string    `json:"city" gorm:"not null;default:'Unknown City'"`
	Image     string    `json:"image" gorm:"not null;default:''"`
	Type      string    `json:"type" gorm:"not null;default:'Flat'"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

func (SavedListing) TableName() string { return "saved_listings" }
