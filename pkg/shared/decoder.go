package shared

import "github.com/go-playground/form"

// Decoder is shared across controllers for query and form binding.
var Decoder = form.NewDecoder()

func init() {
	Decoder.SetTagName("form")
}
