package consumer

import (
	"context"
	"encoding/json"

	"go-payroll/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayslipGenerated drains payslip.generated events and emits a
// payment-notification entry for each. Decode failures are committed and
// skipped so a poison message cannot wedge the group.
func ConsumePayslipGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_generated")
	log.Info("payslip generated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip generated consumer stopped")
				return
			}
			log.Error("fetch payslip generated message failed", zap.Error(err))
			continue
		}

		var event events.PayslipGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip_generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		log.Info("payslip ready notification",
			zap.Int64("payslip_id", event.PayslipID),
			zap.String("payslip_number", event.PayslipNumber),
			zap.Int64("employee_id", event.EmployeeID),
			zap.String("employee_name", event.EmployeeName),
			zap.String("net_salary", event.NetSalary),
			zap.String("request_id", event.RequestID),
		)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip generated message failed", zap.Error(err))
		}
	}
}
