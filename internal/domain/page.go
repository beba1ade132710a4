package domain

import "time"

// Page контентная страница (маркетинговые разделы сайта)
type Page struct {
	Slug         string
	Title        string
	HeroImageURL *string
	Blocks       []PageBlock
	Published    bool
	UpdatedAt    time.Time
}

// PageBlock блок страницы; хранится в JSON вместе со страницей
type PageBlock struct {
	Kind     string `json:"kind"` // text, image, gallery
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}
