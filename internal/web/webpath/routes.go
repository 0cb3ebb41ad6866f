package webpath

const (
	Api = "/api"

	ApiPlayers = Api + "/players"
	ApiPlayer  = ApiPlayers + "/:id"
	ApiRatings = Api + "/ratings"
	ApiMatches = Api + "/matches"

	ApiTournaments = Api + "/tournaments"
	ApiTournament  = ApiTournaments + "/:id"

	ApiBlocks         = Api + "/blocks"
	ApiBlockStandings = ApiBlocks + "/:id/standings"
	ApiBlockFinish    = ApiBlocks + "/:id/finish"
	ApiBlockWinner    = ApiBlocks + "/:id/winner"

	ApiNotices = Api + "/notices"
	ApiNotice  = ApiNotices + "/:id"

	ApiConfig = Api + "/config"
	ApiExport = Api + "/export"
	ApiImport = Api + "/import"
)
