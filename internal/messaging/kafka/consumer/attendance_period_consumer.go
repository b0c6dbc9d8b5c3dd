package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/natthaphattoichatturat/payroll-system/internal/events"
	"github.com/natthaphattoichatturat/payroll-system/internal/payroll"
	payrollerrors "github.com/natthaphattoichatturat/payroll-system/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeAttendancePeriodCalculated prices a period as soon as its attendance
// aggregates land. Payroll upserts on (employee, period), so redelivered
// events converge on the same rows.
func ConsumeAttendancePeriodCalculated(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_period")
	log.Info("attendance period consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance period consumer stopped")
				return
			}
			log.Error("fetch attendance period message failed", zap.Error(err))
			continue
		}

		var event events.AttendancePeriodCalculatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance period event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		summary, err := payrollService.CalculatePeriod(ctx, event.PeriodID)
		if err != nil {
			if errors.Is(err, payrollerrors.ErrPeriodNotFound) || errors.Is(err, payrollerrors.ErrNoAttendance) {
				log.Warn("attendance period event not actionable, skipping",
					zap.String("period_id", event.PeriodID),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("calculate payroll from attendance event failed",
				zap.String("period_id", event.PeriodID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance period message failed", zap.Error(err))
			continue
		}

		log.Info("payroll calculated from attendance event",
			zap.String("period_id", event.PeriodID),
			zap.Int("employees", summary.EmployeesCalculated),
		)
	}
}
