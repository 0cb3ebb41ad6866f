package web

import (
	"testing"

	"clubserver/internal/domain"

	"github.com/google/uuid"
)

func Test_createMatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		match   createMatch
		wantErr bool
	}{
		{
			name: "valid",
			match: createMatch{
				WinnerID:    uuid.NameSpaceDNS,
				LoserID:     uuid.NameSpaceURL,
				WinnerScore: 15,
				LoserScore:  7,
			},
			wantErr: false,
		},
		{
			name: "missing winner",
			match: createMatch{
				LoserID:     uuid.NameSpaceURL,
				WinnerScore: 15,
				LoserScore:  7,
			},
			wantErr: true,
		},
		{
			name: "missing loser",
			match: createMatch{
				WinnerID:    uuid.NameSpaceDNS,
				WinnerScore: 15,
				LoserScore:  7,
			},
			wantErr: true,
		},
		{
			name: "same player",
			match: createMatch{
				WinnerID:    uuid.NameSpaceDNS,
				LoserID:     uuid.NameSpaceDNS,
				WinnerScore: 15,
				LoserScore:  7,
			},
			wantErr: true,
		},
		{
			name: "loser ahead",
			match: createMatch{
				WinnerID:    uuid.NameSpaceDNS,
				LoserID:     uuid.NameSpaceURL,
				WinnerScore: 7,
				LoserScore:  15,
			},
			wantErr: true,
		},
		{
			name: "negative score",
			match: createMatch{
				WinnerID:    uuid.NameSpaceDNS,
				LoserID:     uuid.NameSpaceURL,
				WinnerScore: 15,
				LoserScore:  -2,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.match.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_createBlock_Validate(t *testing.T) {
	valid := createBlock{
		TournamentID: uuid.NameSpaceDNS,
		Name:         "Block A",
		PlayerIDs:    []uuid.UUID{uuid.NameSpaceDNS, uuid.NameSpaceURL},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	short := valid
	short.PlayerIDs = short.PlayerIDs[:1]
	if err := short.Validate(); err == nil {
		t.Error("Validate() = nil for a one player roster")
	}

	noTournament := valid
	noTournament.TournamentID = uuid.Nil
	if err := noTournament.Validate(); err == nil {
		t.Error("Validate() = nil for missing tournament id")
	}
}

func Test_convertBlockToResponse(t *testing.T) {
	block := domain.LeagueBlock{
		ID:           uuid.NameSpaceDNS,
		TournamentID: uuid.NameSpaceURL,
		Name:         "block a",
		Status:       domain.BlockFinished,
		WinnerSource: "unresolved",
		Roster: []domain.Player{
			{ID: uuid.NameSpaceOID, Name: "alice"},
		},
	}

	resp := convertBlockToResponse(block)
	if resp.WinnerID != nil {
		t.Errorf("undecided block must serialize winnerId as null, got %v", resp.WinnerID)
	}
	if len(resp.Roster) != 1 || resp.Roster[0].Name != "alice" {
		t.Errorf("roster not converted: %+v", resp.Roster)
	}

	block.WinnerID = uuid.NameSpaceOID
	resp = convertBlockToResponse(block)
	if resp.WinnerID == nil || *resp.WinnerID != uuid.NameSpaceOID {
		t.Errorf("winnerId not set, got %v", resp.WinnerID)
	}

	tr := convertTournamentToResponse(domain.Tournament{
		ID:     uuid.NameSpaceX500,
		Name:   "spring",
		Status: domain.TournamentOpen,
		Blocks: []domain.LeagueBlock{block},
	})
	if len(tr.Blocks) != 1 || tr.Blocks[0].ID != block.ID {
		t.Errorf("blocks not converted: %+v", tr.Blocks)
	}
}
