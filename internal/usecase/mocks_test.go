package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"rentnest/internal/domain/entity"
	"rentnest/internal/domain/repository"
	"rentnest/pkg/errors"
)

// In-memory fakes backing the use case tests. They mirror the Firestore
// adapters' contract: lookups miss with a NOT_FOUND AppError, and reads
// return copies so state only changes through Update calls.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.GoogleID == googleID {
			u := user
			return &u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

type fakePropertyRepo struct {
	mu         sync.Mutex
	seq        int
	properties map[string]entity.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[string]entity.Property)}
}

func (r *fakePropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	property.ID = fmt.Sprintf("property-%d", r.seq)
	property.CreatedAt = time.Now()
	property.UpdatedAt = property.CreatedAt
	r.properties[property.ID] = *property
	return nil
}

func (r *fakePropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	return &property, nil
}

func (r *fakePropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[property.ID]; !ok {
		return errors.NotFound("Property", nil)
	}
	property.UpdatedAt = time.Now()
	r.properties[property.ID] = *property
	return nil
}

func (r *fakePropertyRepo) List(ctx context.Context, sortBy repository.PropertySort) ([]*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Property, 0, len(r.properties))
	for _, property := range r.properties {
		if property.Status == entity.PropertyStatusDeleted {
			continue
		}
		p := property
		result = append(result, &p)
	}
	sort.Slice(result, func(i, j int) bool {
		switch sortBy {
		case repository.PropertySortPriceAsc:
			return result[i].Price < result[j].Price
		case repository.PropertySortPriceDesc:
			return result[i].Price > result[j].Price
		default:
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
	})
	return result, nil
}

func (r *fakePropertyRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Property, 0)
	for _, property := range r.properties {
		if property.OwnerID == ownerID {
			p := property
			result = append(result, &p)
		}
	}
	return result, nil
}

type fakeRentalRepo struct {
	mu         sync.Mutex
	seq        int
	rentals    map[string]entity.Rental
	properties *fakePropertyRepo
}

func newFakeRentalRepo(properties *fakePropertyRepo) *fakeRentalRepo {
	return &fakeRentalRepo{rentals: make(map[string]entity.Rental), properties: properties}
}

func (r *fakeRentalRepo) Create(ctx context.Context, rental *entity.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	rental.ID = fmt.Sprintf("rental-%d", r.seq)
	rental.CreatedAt = time.Now()
	rental.UpdatedAt = rental.CreatedAt
	r.rentals[rental.ID] = *rental
	return nil
}

func (r *fakeRentalRepo) GetByID(ctx context.Context, id string) (*entity.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rental, ok := r.rentals[id]
	if !ok {
		return nil, errors.NotFound("Rental request", nil)
	}
	return &rental, nil
}

func (r *fakeRentalRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Rental, 0)
	for _, rental := range r.rentals {
		if rental.TenantID == tenantID {
			re := rental
			result = append(result, &re)
		}
	}
	return result, nil
}

func (r *fakeRentalRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Rental, 0)
	for _, rental := range r.rentals {
		if rental.OwnerID == ownerID {
			re := rental
			result = append(result, &re)
		}
	}
	return result, nil
}

func (r *fakeRentalRepo) FindActive(ctx context.Context, propertyID, tenantID string) (*entity.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rental := range r.rentals {
		if rental.PropertyID == propertyID && rental.TenantID == tenantID && rental.Status.Active() {
			re := rental
			return &re, nil
		}
	}
	return nil, errors.NotFound("Rental request", nil)
}

func (r *fakeRentalRepo) UpdateStatus(ctx context.Context, rental *entity.Rental, effect entity.AvailabilityEffect) error {
	r.mu.Lock()
	if _, ok := r.rentals[rental.ID]; !ok {
		r.mu.Unlock()
		return errors.NotFound("Rental request", nil)
	}
	rental.UpdatedAt = time.Now()
	r.rentals[rental.ID] = *rental
	r.mu.Unlock()

	if effect == entity.AvailabilityUnchanged {
		return nil
	}
	property, err := r.properties.GetByID(ctx, rental.PropertyID)
	if err != nil {
		return err
	}
	property.IsAvailable = effect == entity.AvailabilityRelease
	return r.properties.Update(ctx, property)
}

type fakeChatRepo struct {
	mu            sync.Mutex
	seq           int
	conversations map[string]entity.Conversation
	messages      map[string]entity.Message
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		conversations: make(map[string]entity.Conversation),
		messages:      make(map[string]entity.Message),
	}
}

func (r *fakeChatRepo) CreateConversation(ctx context.Context, conversation *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	conversation.ID = fmt.Sprintf("conversation-%d", r.seq)
	conversation.CreatedAt = time.Now()
	conversation.UpdatedAt = conversation.CreatedAt
	r.conversations[conversation.ID] = *conversation
	return nil
}

func (r *fakeChatRepo) GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conversation, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return &conversation, nil
}

func (r *fakeChatRepo) GetConversationByRental(ctx context.Context, rentalID string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conversation := range r.conversations {
		if conversation.RentalID == rentalID {
			c := conversation
			return &c, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *fakeChatRepo) ListConversationsByUser(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Conversation, 0)
	for _, conversation := range r.conversations {
		c := conversation
		if c.IsParticipant(userID) {
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (r *fakeChatRepo) TouchConversation(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conversation, ok := r.conversations[id]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	conversation.UpdatedAt = time.Now()
	r.conversations[id] = conversation
	return nil
}

func (r *fakeChatRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	message.ID = fmt.Sprintf("message-%d", r.seq)
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	message.UpdatedAt = message.CreatedAt
	r.messages[message.ID] = *message
	return nil
}

func (r *fakeChatRepo) GetMessageByID(ctx context.Context, id string) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	message, ok := r.messages[id]
	if !ok {
		return nil, errors.NotFound("Message", nil)
	}
	return &message, nil
}

func (r *fakeChatRepo) UpdateMessage(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[message.ID]; !ok {
		return errors.NotFound("Message", nil)
	}
	message.UpdatedAt = time.Now()
	r.messages[message.ID] = *message
	return nil
}

func (r *fakeChatRepo) ListMessagesByConversation(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Message, 0)
	for _, message := range r.messages {
		if message.ConversationID == conversationID {
			m := message
			result = append(result, &m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

// fakeMailer records deliveries; Send runs on the dispatch goroutine so the
// recorder is guarded.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *fakeMailer) last() sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

type fakeTokenManager struct{}

func (fakeTokenManager) Generate(userID string) (string, error) {
	return "token-" + userID, nil
}

func (fakeTokenManager) Verify(token string) (string, error) {
	if len(token) <= 6 || token[:6] != "token-" {
		return "", errors.Unauthorized("Invalid token", nil)
	}
	return token[6:], nil
}
