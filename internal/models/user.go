package models

import "strings"

// Address is the postal part of a user record.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// Company is the employer part of a user record.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// User is a single managed record. The ID is assigned locally on create
// because the demo API does not persist new records; it stays stable
// across updates.
type User struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
	Address  Address `json:"address"`
}

// Matches reports whether term occurs, case-insensitively, in any of the
// searchable fields: name, email, username, phone, website, company name.
func (u User) Matches(term string) bool {
	t := strings.ToLower(term)
	for _, field := range []string{
		u.Name, u.Email, u.Username, u.Phone, u.Website, u.Company.Name,
	} {
		if strings.Contains(strings.ToLower(field), t) {
			return true
		}
	}
	return false
}
