package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "payslip",
		AggregateID:   "42",
		EventType:     "payslip.generated",
		Topic:         events.PayslipGeneratedTopic,
		Payload:       []byte(`{"payslip_id":42}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))

	missingID := validEvent()
	missingID.ID = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingID))

	missingTopic := validEvent()
	missingTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingTopic))

	emptyPayload := validEvent()
	emptyPayload.Payload = nil
	assert.Error(t, kafka.ValidateOutboxEvent(emptyPayload))

	badStatus := validEvent()
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_Create_OnTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.WithTx(tx).Create(context.Background(), validEvent()))
	assert.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Create_RejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	bad := validEvent()
	bad.Payload = nil
	assert.Error(t, repo.Create(context.Background(), bad))

	// Nothing reaches the database for an invalid event.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "coalesce",
	}).AddRow(
		uuid.New().String(), "payslip", "42", "payslip.generated",
		events.PayslipGeneratedTopic, []byte(`{}`), kafka.OutboxStatusPending, 0, now,
	)

	mock.ExpectQuery("SELECT").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	repo := kafka.NewOutboxRepository(db)
	pending, err := repo.ListPending(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, events.PayslipGeneratedTopic, pending[0].Topic)

	assert.NoError(t, mock.ExpectationsWereMet())
}
