package server

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/weekly-statutes/gazette-tracker/gen/proto/notices/v1"
	"github.com/weekly-statutes/gazette-tracker/gen/ent"
	"github.com/weekly-statutes/gazette-tracker/internal/common"
	"github.com/weekly-statutes/gazette-tracker/internal/gazette"
	"github.com/weekly-statutes/gazette-tracker/internal/pipeline"
	"github.com/weekly-statutes/gazette-tracker/internal/repository"
)

type NoticesService struct {
	v1.UnimplementedNoticesServiceServer
	notices   repository.NoticeRepository
	processor *pipeline.Processor
	logger    *slog.Logger
}

func NewNoticesService(notices repository.NoticeRepository, processor *pipeline.Processor, logger *slog.Logger) *NoticesService {
	return &NoticesService{
		notices:   notices,
		processor: processor,
		logger:    logger,
	}
}

func (s *NoticesService) ExtractNotices(ctx context.Context, req *v1.ExtractNoticesRequest) (*v1.ExtractNoticesResponse, error) {
	validator := common.NewValidator().
		Field("gazette_number", int(req.GetGazetteNumber()), common.GazetteNumber)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	if len(req.GetNoticeNumbers()) == 0 {
		return nil, common.InvalidArgumentError("notice_numbers must be non-empty")
	}
	nums := make([]int, 0, len(req.GetNoticeNumbers()))
	for _, n := range req.GetNoticeNumbers() {
		v := common.NewValidator().Field("notice_numbers", int(n), common.NoticeNumber)
		if err := common.ValidateAndReturnError(v); err != nil {
			return nil, err
		}
		nums = append(nums, int(n))
	}

	jobID, stored, issues, err := s.processor.ProcessGazette(ctx, int(req.GetGazetteNumber()), nums)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError(fmt.Sprintf("gazette %d not ingested", req.GetGazetteNumber()))
		}
		s.logger.Error("extract failed", "gazette_number", req.GetGazetteNumber(), "err", err)
		return nil, common.InternalErrorf("extract: %v", err)
	}

	resp := &v1.ExtractNoticesResponse{
		JobId:   jobID.String(),
		Notices: make([]*v1.Notice, 0, len(stored)),
		Issues:  make([]*v1.ExtractIssue, 0, len(issues)),
	}
	for _, n := range stored {
		resp.Notices = append(resp.Notices, noticeToProto(n))
	}
	for _, iss := range issues {
		resp.Issues = append(resp.Issues, &v1.ExtractIssue{
			GazetteNumber: int32(iss.GazetteNumber),
			NoticeNumber:  int32(iss.NoticeNumber),
			Reason:        iss.Reason,
		})
	}
	return resp, nil
}

func (s *NoticesService) GetNotice(ctx context.Context, req *v1.GetNoticeRequest) (*v1.GetNoticeResponse, error) {
	validator := common.NewValidator().
		Field("gazette_number", int(req.GetGazetteNumber()), common.GazetteNumber).
		Field("notice_number", int(req.GetNoticeNumber()), common.NoticeNumber)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	n, err := s.notices.Get(ctx, int(req.GetGazetteNumber()), int(req.GetNoticeNumber()))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError(fmt.Sprintf("notice %d in gazette %d not found", req.GetNoticeNumber(), req.GetGazetteNumber()))
		}
		s.logger.Error("get notice failed", "gazette_number", req.GetGazetteNumber(), "notice_number", req.GetNoticeNumber(), "err", err)
		return nil, common.InternalErrorf("get notice: %v", err)
	}
	return &v1.GetNoticeResponse{Notice: noticeToProto(n)}, nil
}

func (s *NoticesService) ListNotices(ctx context.Context, req *v1.ListNoticesRequest) (*v1.ListNoticesResponse, error) {
	from, to, err := parseDateRange(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ns, err := s.notices.ListForWeek(ctx, from, to)
	if err != nil {
		s.logger.Error("list notices failed", "err", err)
		return nil, common.InternalErrorf("list notices: %v", err)
	}
	out := make([]*v1.Notice, 0, len(ns))
	for _, n := range ns {
		out = append(out, noticeToProto(n))
	}
	return &v1.ListNoticesResponse{Notices: out}, nil
}

// parseDateRange applies the open-bound defaults: a missing from means the
// beginning of time, a missing to means today.
func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from := time.Time{}
	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, fmt.Errorf("from_date must be YYYY-MM-DD")
		}
		from = t
	}
	if toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, fmt.Errorf("to_date must be YYYY-MM-DD")
		}
		to = t
	}
	if !from.IsZero() && to.Before(from) {
		return from, to, fmt.Errorf("to_date precedes from_date")
	}
	return from, to, nil
}

func noticeToProto(n gazette.Notice) *v1.Notice {
	var page int32
	if n.PageNumber != nil {
		page = int32(*n.PageNumber)
	}
	var issn string
	if n.ISSN != nil {
		issn = *n.ISSN
	}
	return &v1.Notice{
		NoticeNumber:    int32(n.NoticeNumber),
		GazetteNumber:   int32(n.GazetteNumber),
		PublicationDate: publicationDate(n),
		MajorType:       string(n.MajorType),
		MinorType:       n.MinorType,
		Page:            page,
		Issn:            issn,
		Description:     n.Description,
	}
}

func publicationDate(n gazette.Notice) string {
	t, err := time.Parse("2 January 2006", fmt.Sprintf("%d %s %d", n.PublishDay, n.PublishMonthName, n.PublishYear))
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}
