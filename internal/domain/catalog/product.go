package catalog

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int64   `json:"count"`
}

// Product is the single shape used for owned documents and external catalog
// rows. External rows carry no document id, so their own numeric id doubles
// as DocID.
type Product struct {
	DocID       string  `json:"docId"`
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}
