package sqlite

import (
	"errors"

	"clubserver/gen/model"
	"clubserver/gen/table"
	"clubserver/internal/domain"
	"clubserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) ListNotices() ([]domain.Notice, error) {
	var notices []model.Notices
	err := table.Notices.
		SELECT(table.Notices.AllColumns).
		FROM(table.Notices).
		ORDER_BY(table.Notices.Pinned.DESC(), table.Notices.CreatedAt.DESC()).
		Query(s.db, &notices)
	if err != nil {
		return nil, err
	}
	converted := make([]domain.Notice, 0, len(notices))
	for _, n := range notices {
		notice, err := convertNoticeToDomain(n)
		if err != nil {
			return nil, err
		}
		converted = append(converted, notice)
	}
	return converted, nil
}

func (s *Storage) GetNotice(id uuid.UUID) (domain.Notice, error) {
	var n model.Notices
	err := table.Notices.
		SELECT(table.Notices.AllColumns).
		FROM(table.Notices).
		WHERE(table.Notices.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &n)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Notice{}, storage.ErrNotFound
		}
		return domain.Notice{}, err
	}
	return convertNoticeToDomain(n)
}

func (s *Storage) CreateNotice(notice domain.Notice) (domain.Notice, error) {
	_, err := table.Notices.
		INSERT(table.Notices.AllColumns).
		MODEL(convertNoticeFromDomain(notice)).
		Exec(s.db)
	if err != nil {
		return domain.Notice{}, err
	}
	return notice, nil
}

func (s *Storage) UpdateNotice(notice domain.Notice) error {
	n := convertNoticeFromDomain(notice)
	_, err := table.Notices.
		UPDATE(table.Notices.Title, table.Notices.Body, table.Notices.Pinned, table.Notices.UpdatedAt).
		SET(n.Title, n.Body, n.Pinned, n.UpdatedAt).
		WHERE(table.Notices.ID.EQ(sqlite.String(notice.ID.String()))).
		Exec(s.db)
	return err
}

func (s *Storage) DeleteNotice(id uuid.UUID) error {
	_, err := table.Notices.
		DELETE().
		WHERE(table.Notices.ID.EQ(sqlite.String(id.String()))).
		Exec(s.db)
	return err
}
