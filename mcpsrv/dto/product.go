package dto

type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
	Price       string  `json:"price"`
	Rating      float64 `json:"rating"`
}

type Tab struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}
