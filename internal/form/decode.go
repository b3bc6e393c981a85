package form

import (
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/gorilla/schema"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// Decode maps submitted form values onto an Input. Empty values leave the zero value in
// place so that required-field validation can report them.
func Decode(values url.Values) (Input, error) {
	var in Input
	if err := decoder.Decode(&in, values); err != nil {
		var multi schema.MultiError
		if errors.As(err, &multi) && len(multi) > 0 {
			fields := make([]string, 0, len(multi))
			for field := range multi {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			return Input{}, &FieldError{Field: fields[0], Reason: "not a valid value"}
		}
		return Input{}, fmt.Errorf("decoding form: %w", err)
	}
	return in.Normalize(), nil
}
