package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"name@domain.com", true},
		{"first.last@sub.domain.org", true},
		{"a@b.c", true},
		{"", false},
		{"plainaddress", false},
		{"no-at.example.com", false},
		{"a@bcom", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a@b.", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func Test_CustomerDirectory_AddCustomer_InvalidEmail(t *testing.T) {
	d := NewCustomerDirectory()

	err := d.AddCustomer("not-an-email", "A", "B")
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Empty(t, d.AllCustomers())
}

func Test_CustomerDirectory_AddCustomerOverwritesByEmail(t *testing.T) {
	d := NewCustomerDirectory()
	require.NoError(t, d.AddCustomer("a@b.com", "A", "B"))
	require.NoError(t, d.AddCustomer("a@b.com", "Ann", "Bee"))

	all := d.AllCustomers()
	require.Len(t, all, 1)
	assert.Equal(t, Customer{FirstName: "Ann", LastName: "Bee", Email: "a@b.com"}, all[0])
}

func Test_CustomerDirectory_GetCustomerIsExactMatch(t *testing.T) {
	d := NewCustomerDirectory()
	require.NoError(t, d.AddCustomer("a@b.com", "A", "B"))

	c, ok := d.GetCustomer("a@b.com")
	assert.True(t, ok)
	assert.Equal(t, "A", c.FirstName)

	_, ok = d.GetCustomer("A@B.COM")
	assert.False(t, ok, "lookups are case-sensitive")

	_, ok = d.GetCustomer(" a@b.com")
	assert.False(t, ok, "lookups are not trimmed")
}

func Test_CustomerDirectory_AllCustomersIsSnapshot(t *testing.T) {
	d := NewCustomerDirectory()
	require.NoError(t, d.AddCustomer("b@b.com", "B", "B"))
	require.NoError(t, d.AddCustomer("a@b.com", "A", "A"))

	all := d.AllCustomers()
	assert.Equal(t, []string{"a@b.com", "b@b.com"}, []string{all[0].Email, all[1].Email})

	all[0].FirstName = "changed"
	c, _ := d.GetCustomer("a@b.com")
	assert.Equal(t, "A", c.FirstName)
}
