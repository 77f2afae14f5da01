package entity

import "time"

// EditWindow is how long after creation the sender may still edit a text
// message.
const EditWindow = 2 * time.Minute

type Reaction struct {
	UserID string `json:"user_id" firestore:"userId"`
	Emoji  string `json:"emoji" firestore:"emoji"`
}

type Message struct {
	ID             string     `json:"id" firestore:"id"`
	ConversationID string     `json:"conversation_id" firestore:"conversationId"`
	SenderID       string     `json:"sender_id" firestore:"senderId"`
	ReceiverID     string     `json:"receiver_id" firestore:"receiverId"`
	Text           string     `json:"text,omitempty" firestore:"text,omitempty"`
	ImageURL       string     `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	IsEdited       bool       `json:"is_edited" firestore:"isEdited"`
	Reactions      []Reaction `json:"reactions" firestore:"reactions"`
	CreatedAt      time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time  `json:"updated_at" firestore:"updatedAt"`
}

func (m *Message) Editable(now time.Time) bool {
	return now.Sub(m.CreatedAt) < EditWindow
}

// React applies one user's reaction. A user holds at most one reaction per
// message: the same emoji toggles it off, a different emoji replaces it.
func (m *Message) React(userID, emoji string) {
	for i, r := range m.Reactions {
		if r.UserID == userID {
			if r.Emoji == emoji {
				m.Reactions = append(m.Reactions[:i], m.Reactions[i+1:]...)
			} else {
				m.Reactions[i].Emoji = emoji
			}
			return
		}
	}
	m.Reactions = append(m.Reactions, Reaction{UserID: userID, Emoji: emoji})
}
