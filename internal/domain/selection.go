package domain

const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Selection holds the option ids picked so far. An empty id means not selected yet.
type Selection struct {
	ProductType string
	Color       string
	Size        string
	Design      string
	Glaze       string
	Quantity    int
	Note        string
}

func NewSelection() Selection {
	return Selection{Quantity: MinQuantity}
}
