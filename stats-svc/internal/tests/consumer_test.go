package tests

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"tiedan-noodle/stats-svc/internal/domain"
	"tiedan-noodle/stats-svc/internal/mocks"
	"tiedan-noodle/stats-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

var placedAt = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func TestConsumer_ProcessSubmission(t *testing.T) {
	items := []domain.EventItem{{MenuItemID: "noodle-1", Name: "铁蛋鸡汤刀削面", Quantity: 2}}

	tests := []struct {
		name           string
		inputMessage   domain.KafkaMessage
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name: "order",
			inputMessage: domain.KafkaMessage{
				Type:      domain.EventOrderSubmitted,
				ID:        "ORD1",
				Items:     items,
				Timestamp: placedAt,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", mock.Anything, "ORD1").Return(true, nil)
				mockStore.On("RecordOrder", mock.Anything, placedAt, items).Return(nil)
			},
		},
		{
			name: "reservation",
			inputMessage: domain.KafkaMessage{
				Type:      domain.EventReservationSubmitted,
				ID:        "RES1",
				Date:      "2026-10-18",
				Time:      "18:00",
				PartySize: 4,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", mock.Anything, "RES1").Return(true, nil)
				mockStore.On("RecordReservation", mock.Anything, "2026-10-18", 4).Return(nil)
			},
		},
		{
			name: "redelivered",
			inputMessage: domain.KafkaMessage{
				Type:  domain.EventOrderSubmitted,
				ID:    "ORD1",
				Items: items,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", mock.Anything, "ORD1").Return(false, nil)
			},
		},
		{
			name: "MarkProcessed error",
			inputMessage: domain.KafkaMessage{
				Type: domain.EventOrderSubmitted,
				ID:   "ORD2",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", mock.Anything, "ORD2").Return(false, errors.New("redis error"))
			},
		},
		{
			name: "RecordOrder error",
			inputMessage: domain.KafkaMessage{
				Type:      domain.EventOrderSubmitted,
				ID:        "ORD3",
				Items:     items,
				Timestamp: placedAt,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", mock.Anything, "ORD3").Return(true, nil)
				mockStore.On("RecordOrder", mock.Anything, placedAt, items).Return(errors.New("redis error"))
				mockStore.On("UnmarkProcessed", mock.Anything, "ORD3").Return(nil)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			consumer.ProcessSubmission(context.Background(), testCase.inputMessage)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_RedeliveryAfterFailedRecord(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{Store: mockStore}
	msg := domain.KafkaMessage{
		Type:      domain.EventReservationSubmitted,
		ID:        "RES4",
		Date:      "2026-10-18",
		PartySize: 3,
	}

	mockStore.On("MarkProcessed", mock.Anything, "RES4").Return(true, nil).Twice()
	mockStore.On("RecordReservation", mock.Anything, "2026-10-18", 3).Return(errors.New("redis error")).Once()
	mockStore.On("UnmarkProcessed", mock.Anything, "RES4").Return(nil).Once()
	mockStore.On("RecordReservation", mock.Anything, "2026-10-18", 3).Return(nil).Once()

	consumer.ProcessSubmission(context.Background(), msg)
	consumer.ProcessSubmission(context.Background(), msg)
}

func TestConsumer_InvalidMessageType(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{
		Store: mockStore,
	}

	consumer.ProcessSubmission(context.Background(), domain.KafkaMessage{Type: "new_review", ID: "X1"})
	mockStore.AssertNotCalled(t, "MarkProcessed")
	mockStore.AssertNotCalled(t, "RecordOrder")
	mockStore.AssertNotCalled(t, "RecordReservation")
}

type fakeReader struct {
	mu       sync.Mutex
	messages []kafka.Message
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func TestConsumer_Start(t *testing.T) {
	payload, err := json.Marshal(domain.KafkaMessage{
		Type:      domain.EventReservationSubmitted,
		ID:        "RES9",
		Date:      "2026-10-20",
		PartySize: 2,
	})
	if err != nil {
		t.Fatal(err)
	}

	reader := &fakeReader{messages: []kafka.Message{
		{Value: []byte("not json")},
		{Value: payload},
	}}

	mockStore := mocks.NewStoreInterface(t)
	ctx, cancel := context.WithCancel(context.Background())
	mockStore.On("MarkProcessed", mock.Anything, "RES9").Return(true, nil).Once()
	mockStore.On("RecordReservation", mock.Anything, "2026-10-20", 2).
		Run(func(mock.Arguments) { cancel() }).
		Return(nil).Once()

	done := make(chan struct{})
	go func() {
		service.NewConsumer(reader, mockStore).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("consumer did not stop after cancellation")
	}
}
