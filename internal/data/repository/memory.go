package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"flight-booking/internal/data/entity"
)

// The memory store backs the server when no database is reachable. It mirrors
// the postgres repositories' observable behaviour, including the conditional
// status transition, so the usecase layer never knows which driver is live.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[uuid.UUID]entity.User)}
}

func (mr *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for _, existing := range mr.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return entity.ErrDuplicateEmail
		}
	}
	mr.users[user.ID] = *user
	return nil
}

func (mr *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	for _, user := range mr.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (mr *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	user, ok := mr.users[id]
	if !ok {
		return nil, nil
	}
	u := user
	return &u, nil
}

func (mr *memoryUserRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.UserStatus) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	user, ok := mr.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	user.Status = status
	user.UpdatedAt = time.Now()
	mr.users[id] = user
	return nil
}

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]entity.Booking
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{bookings: make(map[uuid.UUID]entity.Booking)}
}

func (mr *memoryBookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.bookings[booking.ID] = *booking
	return nil
}

func (mr *memoryBookingRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	booking, ok := mr.bookings[id]
	if !ok {
		return nil, nil
	}
	b := booking
	return &b, nil
}

func (mr *memoryBookingRepository) FindByPNR(_ context.Context, pnr string) (*entity.Booking, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	for _, booking := range mr.bookings {
		if booking.PNR == pnr {
			b := booking
			return &b, nil
		}
	}
	return nil, nil
}

func (mr *memoryBookingRepository) FindByPNRAndEmail(_ context.Context, pnr, email string) (*entity.Booking, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	for _, booking := range mr.bookings {
		if booking.PNR == pnr && strings.EqualFold(booking.ContactEmail, email) {
			b := booking
			return &b, nil
		}
	}
	return nil, nil
}

func sortBookingsNewestFirst(bookings []entity.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (mr *memoryBookingRepository) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]entity.Booking, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	var bookings []entity.Booking
	for _, booking := range mr.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	sortBookingsNewestFirst(bookings)
	return paginate(bookings, limit, offset), nil
}

func (mr *memoryBookingRepository) CountByUserID(_ context.Context, userID uuid.UUID) (int, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	count := 0
	for _, booking := range mr.bookings {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (mr *memoryBookingRepository) FindAll(_ context.Context, status entity.BookingStatus, limit, offset int) ([]entity.Booking, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	var bookings []entity.Booking
	for _, booking := range mr.bookings {
		if status == "" || booking.Status == status {
			bookings = append(bookings, booking)
		}
	}
	sortBookingsNewestFirst(bookings)
	return paginate(bookings, limit, offset), nil
}

func (mr *memoryBookingRepository) CountAll(_ context.Context, status entity.BookingStatus) (int, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	count := 0
	for _, booking := range mr.bookings {
		if status == "" || booking.Status == status {
			count++
		}
	}
	return count, nil
}

func (mr *memoryBookingRepository) TransitionStatus(_ context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	booking, ok := mr.bookings[id]
	if !ok || booking.Status != from {
		return false, nil
	}
	booking.Status = to
	booking.UpdatedAt = time.Now()
	mr.bookings[id] = booking
	return true, nil
}

func (mr *memoryBookingRepository) SetTicketURL(_ context.Context, id uuid.UUID, url string) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	booking, ok := mr.bookings[id]
	if !ok {
		return entity.ErrBookingNotFound
	}
	booking.TicketURL = &url
	booking.UpdatedAt = time.Now()
	mr.bookings[id] = booking
	return nil
}

func (mr *memoryBookingRepository) Delete(_ context.Context, id uuid.UUID) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	delete(mr.bookings, id)
	return nil
}

type memoryPassengerRepository struct {
	mu         sync.RWMutex
	passengers map[uuid.UUID][]entity.Passenger
}

func NewMemoryPassengerRepository() PassengerRepository {
	return &memoryPassengerRepository{passengers: make(map[uuid.UUID][]entity.Passenger)}
}

func (mr *memoryPassengerRepository) CreateBatch(_ context.Context, passengers []entity.Passenger) error {
	if len(passengers) == 0 {
		return nil
	}

	mr.mu.Lock()
	defer mr.mu.Unlock()

	bookingID := passengers[0].BookingID
	mr.passengers[bookingID] = append(mr.passengers[bookingID], passengers...)
	return nil
}

func (mr *memoryPassengerRepository) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]entity.Passenger, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	passengers := mr.passengers[bookingID]
	out := make([]entity.Passenger, len(passengers))
	copy(out, passengers)
	return out, nil
}

func (mr *memoryPassengerRepository) DeleteByBookingID(_ context.Context, bookingID uuid.UUID) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	delete(mr.passengers, bookingID)
	return nil
}

type memoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]entity.Transaction
}

func NewMemoryTransactionRepository() TransactionRepository {
	return &memoryTransactionRepository{transactions: make(map[uuid.UUID]entity.Transaction)}
}

func (mr *memoryTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.transactions[transaction.ID] = *transaction
	return nil
}

func (mr *memoryTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	transaction, ok := mr.transactions[id]
	if !ok {
		return nil, nil
	}
	t := transaction
	return &t, nil
}

func sortTransactionsNewestFirst(transactions []entity.Transaction) {
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
}

func (mr *memoryTransactionRepository) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]entity.Transaction, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	var transactions []entity.Transaction
	for _, transaction := range mr.transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	sortTransactionsNewestFirst(transactions)
	return paginate(transactions, limit, offset), nil
}

func (mr *memoryTransactionRepository) CountByUserID(_ context.Context, userID uuid.UUID) (int, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	count := 0
	for _, transaction := range mr.transactions {
		if transaction.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (mr *memoryTransactionRepository) FindAll(_ context.Context, status entity.TransactionStatus, limit, offset int) ([]entity.Transaction, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	var transactions []entity.Transaction
	for _, transaction := range mr.transactions {
		if status == "" || transaction.Status == status {
			transactions = append(transactions, transaction)
		}
	}
	sortTransactionsNewestFirst(transactions)
	return paginate(transactions, limit, offset), nil
}

func (mr *memoryTransactionRepository) CountAll(_ context.Context, status entity.TransactionStatus) (int, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	count := 0
	for _, transaction := range mr.transactions {
		if status == "" || transaction.Status == status {
			count++
		}
	}
	return count, nil
}

func (mr *memoryTransactionRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.TransactionStatus, reason string) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	transaction, ok := mr.transactions[id]
	if !ok {
		return entity.ErrTransactionNotFound
	}
	transaction.Status = status
	if reason != "" {
		if transaction.Details == nil {
			transaction.Details = make(map[string]string)
		} else {
			details := make(map[string]string, len(transaction.Details)+1)
			for k, v := range transaction.Details {
				details[k] = v
			}
			transaction.Details = details
		}
		transaction.Details["refund_reason"] = reason
	}
	transaction.UpdatedAt = time.Now()
	mr.transactions[id] = transaction
	return nil
}

type memorySupportRepository struct {
	mu      sync.RWMutex
	tickets map[uuid.UUID]entity.SupportTicket
}

func NewMemorySupportRepository() SupportRepository {
	return &memorySupportRepository{tickets: make(map[uuid.UUID]entity.SupportTicket)}
}

func (mr *memorySupportRepository) Create(_ context.Context, ticket *entity.SupportTicket) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.tickets[ticket.ID] = *ticket
	return nil
}

func (mr *memorySupportRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	ticket, ok := mr.tickets[id]
	if !ok {
		return nil, nil
	}
	t := ticket
	return &t, nil
}

func sortTicketsNewestFirst(tickets []entity.SupportTicket) {
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
}

func (mr *memorySupportRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.SupportTicket, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	var tickets []entity.SupportTicket
	for _, ticket := range mr.tickets {
		if ticket.UserID == userID {
			tickets = append(tickets, ticket)
		}
	}
	sortTicketsNewestFirst(tickets)
	return tickets, nil
}

func (mr *memorySupportRepository) FindAll(_ context.Context, status entity.TicketStatus, limit, offset int) ([]entity.SupportTicket, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	var tickets []entity.SupportTicket
	for _, ticket := range mr.tickets {
		if status == "" || ticket.Status == status {
			tickets = append(tickets, ticket)
		}
	}
	sortTicketsNewestFirst(tickets)
	return paginate(tickets, limit, offset), nil
}

func (mr *memorySupportRepository) CountAll(_ context.Context, status entity.TicketStatus) (int, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	count := 0
	for _, ticket := range mr.tickets {
		if status == "" || ticket.Status == status {
			count++
		}
	}
	return count, nil
}

func (mr *memorySupportRepository) Update(_ context.Context, ticket *entity.SupportTicket) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	if _, ok := mr.tickets[ticket.ID]; !ok {
		return entity.ErrTicketNotFound
	}
	ticket.UpdatedAt = time.Now()
	mr.tickets[ticket.ID] = *ticket
	return nil
}
