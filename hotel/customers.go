package hotel

import (
	"sort"
	"sync"
)

// CustomerDirectory holds registered customers keyed by email.
type CustomerDirectory struct {
	mu        sync.RWMutex
	customers map[string]Customer
}

func NewCustomerDirectory() *CustomerDirectory {
	return &CustomerDirectory{customers: make(map[string]Customer)}
}

// AddCustomer validates the email and stores the customer, replacing any
// customer already registered under the same email.
func (d *CustomerDirectory) AddCustomer(email, firstName, lastName string) error {
	customer, err := NewCustomer(email, firstName, lastName)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers[email] = customer
	return nil
}

// GetCustomer looks the email up exactly as given.
func (d *CustomerDirectory) GetCustomer(email string) (Customer, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.customers[email]
	return c, ok
}

// AllCustomers returns a snapshot sorted by email.
func (d *CustomerDirectory) AllCustomers() []Customer {
	d.mu.RLock()
	defer d.mu.RUnlock()

	customers := make([]Customer, 0, len(d.customers))
	for _, c := range d.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Email < customers[j].Email })
	return customers
}
