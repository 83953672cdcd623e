package models

// Справочный контент сайта. Через API доступен только на чтение.

type Service struct {
	BaseModel
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image"`
}

type Blog struct {
	BaseModel
	Title    string `json:"title"`
	Body     string `json:"body"`
	Author   string `json:"author"`
	ImageURL string `json:"image"`
}

type Review struct {
	BaseModel
	Name     string  `json:"name"`
	Text     string  `json:"text"`
	Rating   float64 `json:"rating"`
	PhotoURL string  `json:"photo"`
}
