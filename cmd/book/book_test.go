package book_test

import (
	"testing"

	"fjacquet/bookctl/cmd/book"

	"github.com/stretchr/testify/assert"
)

func TestBookCommand_Metadata(t *testing.T) {
	assert.Equal(t, "book", book.Cmd.Use)
	assert.Contains(t, book.Cmd.Short, "Reserve an offering")
	assert.NotNil(t, book.Cmd.Run)
}

func TestBookCommand_Flags(t *testing.T) {
	for _, name := range []string{"user", "password", "kind", "service", "quantity"} {
		assert.NotNil(t, book.Cmd.Flags().Lookup(name), "flag %s must be defined", name)
	}
	assert.Equal(t, "1", book.Cmd.Flags().Lookup("quantity").DefValue)
}
