package entity

import "time"

// Conversation is the single messaging thread anchored to one rental
// request. Participants are always the rental's tenant and owner.
type Conversation struct {
	ID           string    `json:"id" firestore:"id"`
	RentalID     string    `json:"rental_id" firestore:"rentalId"`
	Participants []string  `json:"participants" firestore:"participants"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (c *Conversation) IsParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// OtherParticipant returns the participant that is not userID.
func (c *Conversation) OtherParticipant(userID string) string {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}
