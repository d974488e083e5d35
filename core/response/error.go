package response

import (
	"net/http"

	"github.com/dmitrymomot/typedmultipart/core/handler"
)

// Error returns a handler response that propagates the given error to the
// error handler installed with handler.Handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
