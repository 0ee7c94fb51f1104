package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Matches(t *testing.T) {
	u := User{
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Phone:    "1-770-736-8031",
		Website:  "hildegard.org",
		Company:  Company{Name: "Romaguera-Crona"},
	}

	for _, term := range []string{"leanne", "BRET", "april.biz", "770", "hildegard", "romaguera"} {
		assert.Truef(t, u.Matches(term), "term %q", term)
	}
	assert.False(t, u.Matches("nothing-here"))
	assert.True(t, u.Matches(""), "empty term matches everything")
}

func TestUser_MatchesIgnoresAddress(t *testing.T) {
	u := User{Name: "X", Address: Address{City: "Gwenborough"}}
	assert.False(t, u.Matches("gwenborough"), "address is not a searchable field")
}

func TestUser_JSONShape(t *testing.T) {
	raw := `{
		"id": 1, "name": "Leanne Graham", "username": "Bret",
		"email": "Sincere@april.biz",
		"address": {"street": "Kulas Light", "suite": "Apt. 556", "city": "Gwenborough", "zipcode": "92998-3874"},
		"phone": "1-770-736-8031", "website": "hildegard.org",
		"company": {"name": "Romaguera-Crona", "catchPhrase": "Multi-layered client-server neural-net", "bs": "harness real-time e-markets"}
	}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Gwenborough", u.Address.City)
	assert.Equal(t, "harness real-time e-markets", u.Company.BS)
}
