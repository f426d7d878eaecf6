package server

import (
	"context"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/weekly-statutes/gazette-tracker/gen/proto/notices/v1"
	"github.com/weekly-statutes/gazette-tracker/internal/bulletin"
	"github.com/weekly-statutes/gazette-tracker/internal/common"
	"github.com/weekly-statutes/gazette-tracker/internal/repository"
)

type BulletinService struct {
	v1.UnimplementedBulletinServiceServer
	notices repository.NoticeRepository
	logger  *slog.Logger
}

func NewBulletinService(notices repository.NoticeRepository, logger *slog.Logger) *BulletinService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BulletinService{notices: notices, logger: logger}
}

func (s *BulletinService) GenerateBulletin(ctx context.Context, req *v1.GenerateBulletinRequest) (*v1.GenerateBulletinResponse, error) {
	if req.GetBulletinNumber() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "bulletin_number must be positive")
	}
	from, err := time.Parse("2006-01-02", req.GetFromDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return nil, status.Error(codes.InvalidArgument, "to_date precedes from_date")
	}

	ns, err := s.notices.ListForWeek(ctx, from, to)
	if err != nil {
		s.logger.Error("bulletin query failed", "from", from, "to", to, "err", err)
		return nil, common.InternalErrorf("list notices: %v", err)
	}
	if len(ns) == 0 {
		return nil, common.FailedPreconditionError("no notices extracted for the requested week")
	}

	b := bulletin.Bulletin{
		Number:    int(req.GetBulletinNumber()),
		Year:      from.Year(),
		WeekStart: from,
		WeekEnd:   to,
		Notices:   ns,
	}

	resp := &v1.GenerateBulletinResponse{}
	switch req.GetFormat() {
	case v1.BulletinFormat_BULLETIN_FORMAT_XLSX:
		xlsx, err := b.ExportXLSX()
		if err != nil {
			s.logger.Error("bulletin.xlsx.failed", "bulletin_number", b.Number, "err", err)
			return nil, common.InternalErrorf("export xlsx: %v", err)
		}
		resp.Xlsx = xlsx
	default:
		resp.Text = b.Render()
	}
	s.logger.Info("bulletin generated", "bulletin_number", b.Number, "notices", len(ns))
	return resp, nil
}
