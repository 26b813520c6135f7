package models

// Party is the shared row shape of the customers and suppliers tables.
type Party struct {
	PartyID  string `db:"party_id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Address  string `db:"address"`
	IsActive bool   `db:"is_active"`
	AuditFields
}
