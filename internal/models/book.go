package models

// Book is one entry of the book collection. Nil fields were skipped during
// entry and are absent from the stored object.
type Book struct {
	Title     *string `json:"Titel,omitempty"`
	Volume    *string `json:"Band,omitempty"`
	Author    *string `json:"Autor,omitempty"`
	Publisher *string `json:"Verlag,omitempty"`
	Genre     *string `json:"Genre,omitempty"`
	Year      *Number `json:"Erscheinungsjahr,omitempty"`
	Language  *string `json:"Sprache,omitempty"`
	ISBN      *string `json:"ISBN,omitempty"`
	Price     *Number `json:"Original-Preis,omitempty"`
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Text returns a pointer to s.
func Text(s string) *string {
	return &s
}

// Num returns a pointer to n.
func Num(n Number) *Number {
	return &n
}
