package attendance

// ListFilter narrows attendance listings.
type ListFilter struct {
	EmployeeID *string
	From       *string
	To         *string
}
