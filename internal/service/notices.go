package service

import (
	"errors"
	"time"

	"clubserver/internal/domain"
	"clubserver/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoticeNotFound = errors.New("notice not found")
	ErrEmptyNotice    = errors.New("notice title must not be empty")
)

type NoticeService struct {
	noticeStorage storage.NoticeStorage
	log           *logrus.Entry

	notify func(msg string)
}

func NewNoticeService(noticeStorage storage.NoticeStorage, log *logrus.Logger) *NoticeService {
	return &NoticeService{
		noticeStorage: noticeStorage,
		log:           log.WithField("name", "notice_service"),
	}
}

func (s *NoticeService) SetNotifier(fn func(msg string)) {
	s.notify = fn
}

func (s *NoticeService) List() ([]domain.Notice, error) {
	return s.noticeStorage.ListNotices()
}

func (s *NoticeService) Get(id uuid.UUID) (domain.Notice, error) {
	notice, err := s.noticeStorage.GetNotice(id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Notice{}, ErrNoticeNotFound
	}
	return notice, err
}

func (s *NoticeService) Create(title, body string, pinned bool) (domain.Notice, error) {
	if title == "" {
		return domain.Notice{}, ErrEmptyNotice
	}
	now := time.Now()
	notice, err := s.noticeStorage.CreateNotice(domain.Notice{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		Pinned:    pinned,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.Notice{}, err
	}
	if s.notify != nil {
		s.notify("Notice: " + notice.Title)
	}
	return notice, nil
}

func (s *NoticeService) Update(id uuid.UUID, title, body string, pinned bool) (domain.Notice, error) {
	notice, err := s.Get(id)
	if err != nil {
		return domain.Notice{}, err
	}
	if title == "" {
		return domain.Notice{}, ErrEmptyNotice
	}
	notice.Title = title
	notice.Body = body
	notice.Pinned = pinned
	notice.UpdatedAt = time.Now()
	if err := s.noticeStorage.UpdateNotice(notice); err != nil {
		return domain.Notice{}, err
	}
	return notice, nil
}

func (s *NoticeService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.noticeStorage.DeleteNotice(id)
}
