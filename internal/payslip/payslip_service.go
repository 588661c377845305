package payslip

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-payroll/internal/addition"
	"go-payroll/internal/deduction"
	"go-payroll/internal/domain"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	paysliperrors "go-payroll/internal/payslip/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout         = "2006-01-02"
	payslipCounterType = "payslip_number"
)

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GeneratePayslipsRequest) (GeneratePayslipsResponse, error)
	GetAll(ctx context.Context) ([]PayslipResponse, error)
	GetByID(ctx context.Context, id int64) (PayslipResponse, error)
	UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (PayslipResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db            *sql.DB
	repo          Repository
	counterRepo   counter.Repository
	employeeRepo  employee.Repository
	additionRepo  addition.Repository
	deductionRepo deduction.Repository
	outboxRepo    kafka.OutboxRepository
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	employeeRepo employee.Repository,
	additionRepo addition.Repository,
	deductionRepo deduction.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		counterRepo:   counterRepo,
		employeeRepo:  employeeRepo,
		additionRepo:  additionRepo,
		deductionRepo: deductionRepo,
		outboxRepo:    outboxRepo,
		logger:        l,
	}
}

// Generate creates one payslip per requested employee. A malformed period or
// any pre-existing overlapping payslip rejects the whole batch before
// anything is written; after that, each employee succeeds or fails on its
// own and a single bad employee never touches the others.
func (s *service) Generate(ctx context.Context, req GeneratePayslipsRequest) (GeneratePayslipsResponse, error) {
	start, err := time.Parse(dateLayout, req.PayPeriodStart)
	if err != nil {
		return GeneratePayslipsResponse{}, paysliperrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, req.PayPeriodEnd)
	if err != nil {
		return GeneratePayslipsResponse{}, paysliperrors.ErrInvalidDateFormat
	}
	if !end.After(start) {
		return GeneratePayslipsResponse{}, paysliperrors.ErrInvalidPeriod
	}

	taken, err := s.repo.FindOverlapping(ctx, req.EmployeeIDs, start, end)
	if err != nil {
		return GeneratePayslipsResponse{}, err
	}
	if len(taken) > 0 {
		return GeneratePayslipsResponse{}, paysliperrors.OverlappingPeriod(taken)
	}

	logger := contextutil.GetLogger(ctx, s.logger)

	res := GeneratePayslipsResponse{
		Success: []PayslipResponse{},
		Errors:  []GenerationError{},
	}
	for _, employeeID := range req.EmployeeIDs {
		p, err := s.generateOne(ctx, employeeID, start, end, req)
		if err != nil {
			logger.Warn("payslip generation failed for employee",
				zap.Int64("employee_id", employeeID),
				zap.Error(err),
			)
			res.Errors = append(res.Errors, GenerationError{
				EmployeeID: employeeID,
				Error:      generationErrorMessage(err),
			})
			continue
		}
		res.Success = append(res.Success, mapToResponse(*p))
	}

	logger.Info("payslip batch generated",
		zap.Int("requested", len(req.EmployeeIDs)),
		zap.Int("succeeded", len(res.Success)),
		zap.Int("failed", len(res.Errors)),
	)

	return res, nil
}

func (s *service) generateOne(
	ctx context.Context,
	employeeID int64,
	start, end time.Time,
	req GeneratePayslipsRequest,
) (*Payslip, error) {
	empl, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	items, totalAdditions, totalDeductions, err := s.collectItems(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	netSalary := empl.BasicSalary.Add(totalAdditions).Sub(totalDeductions)

	seq, err := s.counterRepo.GetNextValue(ctx, payslipCounterType)
	if err != nil {
		return nil, err
	}

	p := &Payslip{
		Number:          fmt.Sprintf("PS-%06d", seq),
		EmployeeID:      empl.ID,
		EmployeeName:    empl.FullName(),
		CompanyName:     req.CompanyName,
		CompanyAddress:  req.CompanyAddress,
		CompanyLogo:     req.CompanyLogo,
		PayPeriodStart:  start,
		PayPeriodEnd:    end,
		BasicSalary:     empl.BasicSalary,
		TotalAdditions:  totalAdditions,
		TotalDeductions: totalDeductions,
		NetSalary:       netSalary,
		Status:          req.PayslipStatus,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, p, items); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payslip_employee_period" {
			// Lost the race against a concurrent batch for the same window.
			return nil, paysliperrors.ErrPayslipPeriodTaken
		}
		return nil, err
	}

	if err := s.enqueueGeneratedEvent(ctx, tx, p); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return p, nil
}

// collectItems pulls every MONTHLY entry plus the SPECIAL entries whose
// creation date falls inside the pay period, for both directions, and sums
// each direction exactly.
func (s *service) collectItems(
	ctx context.Context,
	employeeID int64,
	start, end time.Time,
) ([]PayslipItem, decimal.Decimal, decimal.Decimal, error) {
	monthlyAdds, err := s.additionRepo.FindMonthlyByEmployee(ctx, employeeID)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	specialAdds, err := s.additionRepo.FindSpecialByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	monthlyDeds, err := s.deductionRepo.FindMonthlyByEmployee(ctx, employeeID)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	specialDeds, err := s.deductionRepo.FindSpecialByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}

	items := make([]PayslipItem, 0, len(monthlyAdds)+len(specialAdds)+len(monthlyDeds)+len(specialDeds))
	totalAdditions := decimal.Zero
	totalDeductions := decimal.Zero

	for _, a := range append(monthlyAdds, specialAdds...) {
		totalAdditions = totalAdditions.Add(a.Amount)
		items = append(items, PayslipItem{
			Direction:   domain.DirectionAddition,
			Name:        a.Name,
			Description: a.Description,
			Amount:      a.Amount,
			Metadata:    a.Metadata,
		})
	}
	for _, d := range append(monthlyDeds, specialDeds...) {
		totalDeductions = totalDeductions.Add(d.Amount)
		items = append(items, PayslipItem{
			Direction:   domain.DirectionDeduction,
			Name:        d.Name,
			Description: d.Description,
			Amount:      d.Amount,
			Metadata:    d.Metadata,
		})
	}

	return items, totalAdditions, totalDeductions, nil
}

// enqueueGeneratedEvent writes the outbox row on the same transaction as the
// payslip, so the event exists exactly when the payslip does.
func (s *service) enqueueGeneratedEvent(ctx context.Context, tx *sql.Tx, p *Payslip) error {
	evt := events.PayslipGeneratedEvent{
		EventType:     "payslip.generated",
		RequestID:     contextutil.GetRequestID(ctx),
		PayslipID:     p.ID,
		PayslipNumber: p.Number,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  p.EmployeeName,
		NetSalary:     p.NetSalary.String(),
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     evt.RequestID,
		AggregateType: "payslip",
		AggregateID:   strconv.FormatInt(p.ID, 10),
		EventType:     evt.EventType,
		Topic:         events.PayslipGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context) ([]PayslipResponse, error) {
	payslips, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (PayslipResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
		}
		return PayslipResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (PayslipResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
		}
		return PayslipResponse{}, err
	}

	if !isForwardTransition(p.Status, req.Status) {
		return PayslipResponse{}, paysliperrors.ErrInvalidStatusTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		return PayslipResponse{}, err
	}

	p.Status = req.Status
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return paysliperrors.ErrPayslipNotFound
	}

	return nil
}

func isForwardTransition(from, to string) bool {
	switch from {
	case domain.PayslipStatusDraft:
		return to == domain.PayslipStatusProcessed
	case domain.PayslipStatusProcessed:
		return to == domain.PayslipStatusPaid
	default:
		return false
	}
}

// generationErrorMessage keeps raw storage errors out of the per-employee
// errors array.
func generationErrorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "failed to create payslip"
}

func mapToResponse(p Payslip) PayslipResponse {
	items := make([]PayslipItemResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = PayslipItemResponse{
			ID:          it.ID,
			Direction:   it.Direction,
			Name:        it.Name,
			Amount:      it.Amount.String(),
			Description: it.Description,
		}
		if it.Metadata != nil {
			items[i].Metadata = &MetadataPayload{
				Hours:      it.Metadata.Hours,
				HourRate:   it.Metadata.HourRate,
				Multiplier: it.Metadata.Multiplier,
			}
		}
	}

	return PayslipResponse{
		ID:              p.ID,
		Number:          p.Number,
		EmployeeID:      p.EmployeeID,
		EmployeeName:    p.EmployeeName,
		CompanyName:     p.CompanyName,
		CompanyAddress:  p.CompanyAddress,
		CompanyLogo:     p.CompanyLogo,
		PayPeriodStart:  p.PayPeriodStart.Format(dateLayout),
		PayPeriodEnd:    p.PayPeriodEnd.Format(dateLayout),
		BasicSalary:     p.BasicSalary.String(),
		TotalAdditions:  p.TotalAdditions.String(),
		TotalDeductions: p.TotalDeductions.String(),
		NetSalary:       p.NetSalary.String(),
		PayslipStatus:   p.Status,
		Items:           items,
		CreatedAt:       p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
