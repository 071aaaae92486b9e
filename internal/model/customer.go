package model

// Customer represents a customer. It holds only comparable fields so that it
// can be used directly as a map key.
type Customer struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name" gorm:"size:255;not null"`
	Tier int    `json:"tier" db:"tier" gorm:"not null"`
}

// TableName overrides the GORM table name.
func (Customer) TableName() string {
	return "customer"
}
