package handler

import (
	"cast-match/internal/delivery/http/dto"
	"cast-match/internal/delivery/http/middleware"
	"cast-match/internal/pkg/response"
	"cast-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/match")
	grp.Post("/rank", h.Rank)
	grp.Post("/score", h.Score)
}

func (h *MatchHandler) Rank(c fiber.Ctx) error {
	var req dto.RankRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid payload", nil, err)
	}

	scored := h.uc.RankOpenings(c.Context(), req.Candidate.ToDomain(), req.Pairings())

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRankResponse(scored))
}

func (h *MatchHandler) Score(c fiber.Ctx) error {
	var req dto.ScoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid payload", nil, err)
	}

	score := h.uc.ScoreOpening(c.Context(), req.Candidate.ToDomain(), req.Opening.ToDomain(), req.Project.ToDomain())

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ScoreResponse{MatchScore: score})
}
