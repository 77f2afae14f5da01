package entity

import (
	"time"
)

type RentalStatus string

const (
	RentalStatusPending               RentalStatus = "pending"
	RentalStatusAccepted              RentalStatus = "accepted"
	RentalStatusDenied                RentalStatus = "denied"
	RentalStatusCancelled             RentalStatus = "cancelled"
	RentalStatusCancellationRequested RentalStatus = "cancellationRequested"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusPending, RentalStatusAccepted, RentalStatusDenied,
		RentalStatusCancelled, RentalStatusCancellationRequested:
		return true
	}
	return false
}

// Active reports whether the status still blocks a new request for the same
// (property, tenant) pair.
func (s RentalStatus) Active() bool {
	return s == RentalStatusPending || s == RentalStatusAccepted
}

// Rental links a tenant, an owner and a property. OwnerID is a snapshot of
// the property owner taken at creation time; later ownership changes do not
// rewrite it.
type Rental struct {
	ID         string       `json:"id" firestore:"id"`
	PropertyID string       `json:"property_id" firestore:"propertyId"`
	TenantID   string       `json:"tenant_id" firestore:"tenantId"`
	OwnerID    string       `json:"owner_id" firestore:"ownerId"`
	Status     RentalStatus `json:"status" firestore:"status"`
	CreatedAt  time.Time    `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time    `json:"updated_at" firestore:"updatedAt"`
}

func (r *Rental) IsOwner(userID string) bool {
	return r.OwnerID == userID
}

func (r *Rental) IsTenant(userID string) bool {
	return r.TenantID == userID
}

func (r *Rental) IsParticipant(userID string) bool {
	return r.IsOwner(userID) || r.IsTenant(userID)
}

// AvailabilityEffect is the property-availability side effect a status
// transition carries.
type AvailabilityEffect int

const (
	AvailabilityUnchanged AvailabilityEffect = iota
	AvailabilityHold                         // property becomes unavailable
	AvailabilityRelease                      // property becomes available again
)

type transitionKey struct {
	asOwner bool
	from    RentalStatus
	to      RentalStatus
}

// The closed transition table. Any (actor, from, to) triple not listed here
// is rejected.
var rentalTransitions = map[transitionKey]AvailabilityEffect{
	{asOwner: true, from: RentalStatusPending, to: RentalStatusAccepted}:               AvailabilityHold,
	{asOwner: true, from: RentalStatusPending, to: RentalStatusDenied}:                 AvailabilityUnchanged,
	{asOwner: true, from: RentalStatusCancellationRequested, to: RentalStatusCancelled}: AvailabilityRelease,
	// Owner rejects the cancellation: back to accepted, property stays held.
	{asOwner: true, from: RentalStatusCancellationRequested, to: RentalStatusAccepted}: AvailabilityUnchanged,
	{asOwner: false, from: RentalStatusPending, to: RentalStatusCancelled}:             AvailabilityUnchanged,
	{asOwner: false, from: RentalStatusAccepted, to: RentalStatusCancellationRequested}: AvailabilityUnchanged,
}

// Transition validates a status change requested by userID and returns the
// availability side effect it carries.
func (r *Rental) Transition(userID string, to RentalStatus) (AvailabilityEffect, bool) {
	effect, ok := rentalTransitions[transitionKey{
		asOwner: r.IsOwner(userID),
		from:    r.Status,
		to:      to,
	}]
	return effect, ok
}
