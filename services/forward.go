package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"capi/forwarder/config"
	"capi/forwarder/database"
	"capi/forwarder/domain"

	"github.com/google/uuid"
)

// PartnerAgent identifies this integration to the Conversions API.
const PartnerAgent = "gtmss-1.0.0-0.0.5"

// ErrDeliveryFailed is returned when an event could not be delivered,
// either because the request itself failed or because the API rejected it
// with a non-2xx status.
var ErrDeliveryFailed = errors.New("event delivery failed")

var _ domain.ForwardService = &forwardService{}

type forwardService struct {
	cfg     *config.FacebookConfig
	graph   *graphClient
	auditor *DeliveryAuditor
	stats   *database.StatsRedis
	now     func() time.Time
}

// Forward maps one normalized event onto the Conversions API schema,
// posts it, and reports exactly one success or failure outcome.
func (s *forwardService) Forward(ctx context.Context, event *domain.ForwardRequest, cookies domain.CookieLookup) (*domain.ForwardResponse, error) {
	envelope := s.assembleEnvelope(event, cookies)
	serverEvent := envelope.Data[0]

	start := time.Now()
	statusCode, err := s.graph.Send(ctx, envelope)
	duration := time.Since(start)

	delivered := err == nil && statusCode >= 200 && statusCode < 300
	s.record(envelope, statusCode, delivered, duration)

	if err != nil {
		return &domain.ForwardResponse{
			Success:   false,
			Message:   "Delivery failed: " + err.Error(),
			EventName: serverEvent.EventName,
		}, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	if !delivered {
		return &domain.ForwardResponse{
			Success:    false,
			Message:    fmt.Sprintf("Conversions API rejected the event with status %d", statusCode),
			EventName:  serverEvent.EventName,
			StatusCode: statusCode,
		}, fmt.Errorf("%w: status %d", ErrDeliveryFailed, statusCode)
	}

	return &domain.ForwardResponse{
		Success:    true,
		Message:    "Event delivered successfully",
		EventName:  serverEvent.EventName,
		StatusCode: statusCode,
	}, nil
}

// assembleEnvelope composes the outbound event and wraps it in the API
// envelope. Event time falls back to the current wall clock in whole
// seconds; action source and test event code fall back from the event to
// the configured defaults.
func (s *forwardService) assembleEnvelope(event *domain.ForwardRequest, cookies domain.CookieLookup) *domain.EventEnvelope {
	serverEvent := domain.ServerEvent{
		EventName:      translateEventName(event.EventName),
		EventTime:      s.now().Unix(),
		EventID:        event.EventID,
		EventSourceURL: event.PageLocation,
		ActionSource:   resolveWithDefault(event.ActionSource, s.cfg.ActionSource),
		UserData:       buildUserData(event, cookies),
		CustomData:     buildCustomData(event),
	}
	if event.EventTime != nil {
		serverEvent.EventTime = *event.EventTime
	}

	return &domain.EventEnvelope{
		Data:          []domain.ServerEvent{serverEvent},
		PartnerAgent:  PartnerAgent,
		TestEventCode: resolveWithDefault(event.TestEventCode, s.cfg.TestEventCode),
	}
}

// resolveWithDefault falls back from an event-supplied value to a
// configured default; an empty default resolves as absent.
func resolveWithDefault(value *string, fallback string) *string {
	if value != nil {
		return value
	}
	if fallback != "" {
		return &fallback
	}
	return nil
}

// record updates the optional delivery sinks. Both are best-effort and
// never affect the delivery outcome.
func (s *forwardService) record(envelope *domain.EventEnvelope, statusCode int, delivered bool, duration time.Duration) {
	serverEvent := envelope.Data[0]

	if s.stats != nil {
		go func() {
			if err := s.stats.IncrDelivery(context.Background(), delivered); err != nil {
				log.Printf("Failed to update delivery stats: %v", err)
			}
		}()
	}

	if s.auditor != nil {
		record := database.DeliveryRecord{
			ID:          uuid.NewString(),
			EventName:   serverEvent.EventName,
			EventID:     stringValue(serverEvent.EventID),
			PixelID:     s.cfg.PixelID,
			StatusCode:  int32(statusCode),
			Success:     boolToUint8(delivered),
			TestEvent:   boolToUint8(envelope.TestEventCode != nil),
			DurationMs:  duration.Milliseconds(),
			DeliveredAt: time.Now(),
		}
		if err := s.auditor.Enqueue(record); err != nil {
			log.Printf("Audit buffer full, dropping delivery record for %s", serverEvent.EventName)
		}
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// NewForwardService returns a domain.ForwardService posting to the
// configured Conversions API destination. The ClickHouse connection and
// the Redis stats client are optional; passing nil disables the audit log
// and the delivery counters respectively.
func NewForwardService(cfg *config.Config, db *database.ClickHouseDB, stats *database.StatsRedis) (domain.ForwardService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Facebook.PixelID == "" {
		return nil, fmt.Errorf("pixel id cannot be empty")
	}
	if cfg.Facebook.AccessToken == "" {
		return nil, fmt.Errorf("access token cannot be empty")
	}

	var auditor *DeliveryAuditor
	if db != nil {
		auditor = NewDeliveryAuditor(
			cfg.ClickHouse.BufferChannelCapacity,
			cfg.ClickHouse.BatchSize,
			cfg.ClickHouse.FlushIntervalSeconds,
			*db,
		)
		auditor.Start()
	}

	srv := &forwardService{
		cfg:     &cfg.Facebook,
		graph:   newGraphClient(&cfg.Facebook),
		auditor: auditor,
		stats:   stats,
		now:     time.Now,
	}
	return srv, nil
}

// Shutdown gracefully shuts down the forward service and its auditor
func (s *forwardService) Shutdown() error {
	if s.auditor != nil {
		return s.auditor.Shutdown()
	}
	return nil
}

// ShutdownForwardService gracefully shuts down a forward service if it supports shutdown
func ShutdownForwardService(service domain.ForwardService) error {
	if srv, ok := service.(interface{ Shutdown() error }); ok {
		return srv.Shutdown()
	}
	return nil
}
