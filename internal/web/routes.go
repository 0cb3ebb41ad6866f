package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	players, err := s.playerService.ListPlayers()
	if err != nil {
		return err
	}
	return ctx.JSON(convertPlayersToResponse(players))
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	var req createPlayer
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	player, err := s.playerService.CreatePlayer(req.Name)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertPlayerToResponse(player))
}

func (s *Server) handlePlayerInfo(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid player id")
	}
	player, err := s.playerService.Get(id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertPlayerToResponse(player))
}

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	ratings, err := s.playerService.GetRatings()
	if err != nil {
		return err
	}
	return ctx.JSON(convertPlayersToResponse(ratings))
}

func (s *Server) handleMatches(ctx *fiber.Ctx) error {
	matches, err := s.playerService.GetMatches()
	if err != nil {
		return err
	}
	resp := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, convertMatchToResponse(m))
	}
	return ctx.JSON(resp)
}

func (s *Server) handleCreateMatch(ctx *fiber.Ctx) error {
	var req createMatch
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	match, err := s.playerService.RecordMatch(req.WinnerID, req.LoserID, req.WinnerScore, req.LoserScore, req.BlockID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertMatchToResponse(match))
}

func (s *Server) handleListTournaments(ctx *fiber.Ctx) error {
	tournaments, err := s.tournamentService.ListTournaments()
	if err != nil {
		return err
	}
	resp := make([]tournamentResponse, 0, len(tournaments))
	for _, t := range tournaments {
		resp = append(resp, convertTournamentToResponse(t))
	}
	return ctx.JSON(resp)
}

func (s *Server) handleCreateTournament(ctx *fiber.Ctx) error {
	var req createTournament
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	tournament, err := s.tournamentService.CreateTournament(req.Name)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertTournamentToResponse(tournament))
}

func (s *Server) handleTournament(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tournament id")
	}
	tournament, err := s.tournamentService.GetTournament(id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertTournamentToResponse(tournament))
}

func (s *Server) handleCreateBlock(ctx *fiber.Ctx) error {
	var req createBlock
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	block, err := s.tournamentService.CreateBlock(req.TournamentID, req.Name, req.PlayerIDs)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertBlockToResponse(block))
}

func (s *Server) handleBlockStandings(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid block id")
	}
	res, err := s.tournamentService.BlockStandings(id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertBlockStandingsToResponse(res))
}

func (s *Server) handleFinishBlock(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid block id")
	}
	res, err := s.tournamentService.FinishBlock(id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertBlockStandingsToResponse(res))
}

func (s *Server) handleSetBlockWinner(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid block id")
	}
	var req setBlockWinner
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := s.tournamentService.SetBlockWinner(id, req.PlayerID); err != nil {
		return err
	}
	res, err := s.tournamentService.BlockStandings(id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertBlockStandingsToResponse(res))
}

func (s *Server) handleListNotices(ctx *fiber.Ctx) error {
	notices, err := s.noticeService.List()
	if err != nil {
		return err
	}
	resp := make([]noticeResponse, 0, len(notices))
	for _, n := range notices {
		resp = append(resp, convertNoticeToResponse(n))
	}
	return ctx.JSON(resp)
}

func (s *Server) handleCreateNotice(ctx *fiber.Ctx) error {
	var req createNotice
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	notice, err := s.noticeService.Create(req.Title, req.Body, req.Pinned)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertNoticeToResponse(notice))
}

func (s *Server) handleNotice(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid notice id")
	}
	notice, err := s.noticeService.Get(id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertNoticeToResponse(notice))
}

func (s *Server) handleUpdateNotice(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid notice id")
	}
	var req createNotice
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	notice, err := s.noticeService.Update(id, req.Title, req.Body, req.Pinned)
	if err != nil {
		return err
	}
	return ctx.JSON(convertNoticeToResponse(notice))
}

func (s *Server) handleDeleteNotice(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid notice id")
	}
	if err := s.noticeService.Delete(id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleGetConfig(ctx *fiber.Ctx) error {
	cfg, err := s.configService.Get()
	if err != nil {
		return err
	}
	return ctx.JSON(convertConfigToResponse(cfg))
}

func (s *Server) handleUpdateConfig(ctx *fiber.Ctx) error {
	var req updateConfig
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	cfg, err := s.configService.Update(req.convertToConfig())
	if err != nil {
		return err
	}
	return ctx.JSON(convertConfigToResponse(cfg))
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	data, err := s.playerService.Export()
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(data)
}

func (s *Server) handleImport(ctx *fiber.Ctx) error {
	if err := s.playerService.Import(ctx.Body()); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
