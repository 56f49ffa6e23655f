// Package server exposes the marketplace over HTTP. Every state-changing
// route passes token verification and, where required, a role check before
// its handler runs; ownership checks happen inside the workflow services.
package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/estately/estately/core"
)

type Options struct {
	// SecureCookies selects the deployment-mode cookie policy: Secure +
	// SameSite=None behind TLS, SameSite=Strict otherwise. Process-level,
	// never per request.
	SecureCookies bool
}

type Server struct {
	app  *core.App
	opts Options
}

func New(app *core.App, opts Options) *Server {
	return &Server{app: app, opts: opts}
}

// Register mounts every route on the fiber app.
func (s *Server) Register(f *fiber.App) {
	auth := s.requireAuth
	agent := s.requireRole(core.RoleAgent)
	admin := s.requireRole(core.RoleAdmin)

	// Authentication entry points (no gate)
	f.Post("/jwt", s.issueToken)
	f.Post("/logout", s.logout)
	f.Put("/users/:email", s.upsertUser)
	f.Get("/user/:email", s.getUserRole)

	// Catalog
	f.Get("/properties", auth, s.listProperties)
	f.Get("/property/:id", auth, s.getProperty)

	// Wishlist / offer workflow
	f.Post("/wishlist/single-property", auth, s.saveToWishlist)
	f.Get("/wishlist/properties/:email", auth, s.listWishlist)
	f.Put("/wishlist/single-property/update/:id", auth, s.submitOffer)
	f.Delete("/wishlist/single-property/:id", auth, s.deleteWishlistEntry)
	f.Patch("/wishlist/properties/:id", auth, agent, s.decideOffer)
	f.Get("/wishlist/requested-properties/:email", auth, agent, s.listRequestedOffers)

	// Listing lifecycle
	f.Post("/add-property", auth, agent, s.addProperty)
	f.Put("/update-property/:id", auth, agent, s.updateProperty)
	f.Delete("/delete-property/:id", auth, agent, s.deleteProperty)
	f.Get("/agent-properties/:email", auth, agent, s.listAgentProperties)

	// Payments & bookings
	f.Post("/create-payment-intent", auth, s.createPaymentIntent)
	f.Post("/bookings", auth, s.createBooking)
	f.Get("/bookings/user", auth, s.listUserBookings)
	f.Get("/bookings/agent", auth, agent, s.listAgentBookings)
	f.Patch("/bookings/:id", auth, agent, s.updateBookingStatus)
	f.Get("/agent-sale/:email", auth, agent, s.agentSalesTotal)

	// Administration
	f.Get("/users", auth, admin, s.listUsers)
	f.Patch("/users/:email", auth, admin, s.changeUserRole)
	f.Delete("/users/:id", auth, admin, s.deleteUser)
	f.Patch("/properties/update/:id", auth, admin, s.setPropertyFlags)
}
