package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/estately/estately/core"
)

func (s *Server) saveToWishlist(c fiber.Ctx) error {
	var input core.SaveInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	offer, err := s.app.Offers.Save(c.Context(), subjectFrom(c), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(offer)
}

// listWishlist returns the caller's saved and offered records side by side.
// The path email must equal the caller's own subject.
func (s *Server) listWishlist(c fiber.Ctx) error {
	if c.Params("email") != subjectFrom(c) {
		return unauthorized(c)
	}

	saved, err := s.app.Offers.ListSaved(c.Context(), subjectFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	offered, err := s.app.Offers.ListOffered(c.Context(), subjectFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"wishlist": saved,
		"offers":   offered,
	})
}

func (s *Server) submitOffer(c fiber.Ctx) error {
	var input core.OfferInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	offer, err := s.app.Offers.Submit(c.Context(), subjectFrom(c), c.Params("id"), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(offer)
}

type decisionInput struct {
	Status string `json:"status"`
}

// decideOffer is the agent-side transition: "accepted"/"rejected" decide a
// pending offer, any other value updates fulfillment on a decided one.
func (s *Server) decideOffer(c fiber.Ctx) error {
	var input decisionInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if input.Status == core.StatusAccepted || input.Status == core.StatusRejected {
		offer, err := s.app.Offers.Decide(c.Context(), subjectFrom(c), c.Params("id"), input.Status)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(offer)
	}

	if err := s.app.Offers.SetFulfillment(c.Context(), subjectFrom(c), c.Params("id"), input.Status); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// listRequestedOffers is scoped to the agent's own email and never includes
// bare wishlist saves.
func (s *Server) listRequestedOffers(c fiber.Ctx) error {
	if c.Params("email") != subjectFrom(c) {
		return unauthorized(c)
	}

	offers, err := s.app.Offers.ListForAgent(c.Context(), subjectFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(offers)
}

func (s *Server) deleteWishlistEntry(c fiber.Ctx) error {
	if err := s.app.Offers.Delete(c.Context(), subjectFrom(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
