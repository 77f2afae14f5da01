package entity

import (
	"time"
)

type PricingFrequency string

const (
	PricingMonthly   PricingFrequency = "monthly"
	PricingWeekly    PricingFrequency = "weekly"
	PricingQuarterly PricingFrequency = "quarterly"
	PricingYearly    PricingFrequency = "yearly"
)

func (f PricingFrequency) Valid() bool {
	switch f {
	case PricingMonthly, PricingWeekly, PricingQuarterly, PricingYearly:
		return true
	}
	return false
}

type PropertyStatus string

const (
	PropertyStatusActive  PropertyStatus = "active"
	PropertyStatusHidden  PropertyStatus = "hidden"
	PropertyStatusDeleted PropertyStatus = "deleted"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusActive, PropertyStatusHidden, PropertyStatusDeleted:
		return true
	}
	return false
}

// Property is a rentable listing. Deletion is a soft status transition; the
// document is never removed. IsAvailable is flipped by the rental lifecycle,
// not by the owner directly.
type Property struct {
	ID               string           `json:"id" firestore:"id"`
	OwnerID          string           `json:"owner_id" firestore:"ownerId"`
	Title            string           `json:"title" firestore:"title"`
	Description      string           `json:"description" firestore:"description"`
	Address          string           `json:"address" firestore:"address"`
	Images           []string         `json:"images" firestore:"images"`
	Price            float64          `json:"price" firestore:"price"`
	PricingFrequency PricingFrequency `json:"pricing_frequency" firestore:"pricingFrequency"`
	AllowBargaining  bool             `json:"allow_bargaining" firestore:"allowBargaining"`
	Status           PropertyStatus   `json:"status" firestore:"status"`
	IsAvailable      bool             `json:"is_available" firestore:"isAvailable"`
	CreatedAt        time.Time        `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time        `json:"updated_at" firestore:"updatedAt"`
}

type PropertySummary struct {
	ID               string           `json:"id" firestore:"id"`
	Title            string           `json:"title" firestore:"title"`
	Images           []string         `json:"images" firestore:"images"`
	Price            float64          `json:"price" firestore:"price"`
	PricingFrequency PricingFrequency `json:"pricing_frequency" firestore:"pricingFrequency"`
}

func (p *Property) Summary() *PropertySummary {
	return &PropertySummary{
		ID:               p.ID,
		Title:            p.Title,
		Images:           p.Images,
		Price:            p.Price,
		PricingFrequency: p.PricingFrequency,
	}
}
