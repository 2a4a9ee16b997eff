package models

type User struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	IsLoggedIn     bool     `json:"is_logged_in"`
	BookingHistory []string `json:"booking_history"`
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.BookingHistory = append([]string(nil), u.BookingHistory...)
	return &out
}
