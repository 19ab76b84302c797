package domain

// Product is a listing record served by the remote shop API.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       Money
	Stock       int
}

type Category struct {
	ID   string
	Name string
}
