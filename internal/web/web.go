package web

import (
	"errors"
	"strconv"

	"clubserver/internal/config"
	"clubserver/internal/service"
	"clubserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Server struct {
	playerService     *service.PlayerService
	tournamentService *service.TournamentService
	noticeService     *service.NoticeService
	configService     *service.ConfigService
	app               *fiber.App
	cfg               config.Server
	log               *logrus.Entry
}

func New(
	ps *service.PlayerService,
	ts *service.TournamentService,
	ns *service.NoticeService,
	cs *service.ConfigService,
	cfg config.Server,
	log *logrus.Logger,
) *Server {
	server := Server{
		playerService:     ps,
		tournamentService: ts,
		noticeService:     ns,
		configService:     cs,
		cfg:               cfg,
		log:               log.WithField("name", "web"),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: server.handleError,
	})

	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Post(webpath.ApiPlayers, server.handleCreatePlayer)
	app.Get(webpath.ApiPlayer, server.handlePlayerInfo)
	app.Get(webpath.ApiRatings, server.handleRatings)
	app.Get(webpath.ApiMatches, server.handleMatches)
	app.Post(webpath.ApiMatches, server.handleCreateMatch)

	app.Get(webpath.ApiTournaments, server.handleListTournaments)
	app.Post(webpath.ApiTournaments, server.handleCreateTournament)
	app.Get(webpath.ApiTournament, server.handleTournament)
	app.Post(webpath.ApiBlocks, server.handleCreateBlock)
	app.Get(webpath.ApiBlockStandings, server.handleBlockStandings)
	app.Post(webpath.ApiBlockFinish, server.handleFinishBlock)
	app.Post(webpath.ApiBlockWinner, server.handleSetBlockWinner)

	app.Get(webpath.ApiNotices, server.handleListNotices)
	app.Post(webpath.ApiNotices, server.handleCreateNotice)
	app.Get(webpath.ApiNotice, server.handleNotice)
	app.Put(webpath.ApiNotice, server.handleUpdateNotice)
	app.Delete(webpath.ApiNotice, server.handleDeleteNotice)

	app.Get(webpath.ApiConfig, server.handleGetConfig)
	app.Put(webpath.ApiConfig, server.handleUpdateConfig)
	app.Get(webpath.ApiExport, server.handleExport)
	app.Post(webpath.ApiImport, server.handleImport)

	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleError maps service sentinels to status codes; anything unknown
// is a 500 with the detail kept out of the response body.
func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	status := fiber.StatusInternalServerError
	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	case errors.Is(err, service.ErrPlayerNotFound),
		errors.Is(err, service.ErrTournamentNotFound),
		errors.Is(err, service.ErrBlockNotFound),
		errors.Is(err, service.ErrNoticeNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrNameTaken),
		errors.Is(err, service.ErrSamePlayer),
		errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrEmptyRoster),
		errors.Is(err, service.ErrEmptyNotice),
		errors.Is(err, service.ErrNotInBlock):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
		return ctx.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
