package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type UserTitle string

const (
	TitleMr  UserTitle = "Mr"
	TitleMs  UserTitle = "Ms"
	TitleMrs UserTitle = "Mrs"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

// GuestEmail identifies the shared user row that owns all guest-checkout
// bookings. Seeded at startup in the memory store, created on first guest
// booking in the postgres store.
const GuestEmail = "guest@onboardticket.local"

type User struct {
	Base
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Title        UserTitle  `db:"title"`
	Role         UserRole   `db:"role"`
	Status       UserStatus `db:"status"`
}

func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	return u.FirstName + " " + u.LastName
}
