// Package contracts defines the interfaces the application bootstrap
// accepts from the domain packages, so pkg/app never imports internal/.
package contracts

import "github.com/julienschmidt/httprouter"

// Handler is anything that can mount its routes on a router. The
// profile and health handlers both satisfy it.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
