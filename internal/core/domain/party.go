package domain

// PartyKind selects which register a party belongs to.
type PartyKind string

const (
	Customer PartyKind = "CUSTOMER"
	Supplier PartyKind = "SUPPLIER"
)

// Party is a customer or supplier contact. Customers and suppliers share one
// shape and are stored in separate tables selected by Kind.
type Party struct {
	PartyID  string    `json:"partyID"` // Primary key (UUID)
	Kind     PartyKind `json:"kind"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	IsActive bool      `json:"isActive"`
	AuditFields
}
