package collect

import "produktmanager/internal/models"

// Book asks for every book field in turn. Fields answered with Skip stay nil.
func Book(p Prompter) (models.Book, error) {
	p.Say("Geben Sie die Informationen ein (mit %s überspringen):", Skip)

	f := newForm(p)
	book := models.Book{
		Title:     f.text("Titel: "),
		Volume:    f.text("Band: "),
		Author:    f.text("Autor: "),
		Publisher: f.text("Verlag: "),
		Genre:     f.text("Genre: "),
		Year:      f.integer("Erscheinungsjahr: "),
		Language:  f.text("Sprache: "),
		ISBN:      f.text("ISBN: "),
		Price:     f.decimal("Original-Preis (in €): "),
	}
	if f.err != nil {
		return models.Book{}, f.err
	}
	return book, nil
}
