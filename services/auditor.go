package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"capi/forwarder/database"
)

var (
	// ErrAuditBufferFull is returned when the audit buffer channel is full
	ErrAuditBufferFull = errors.New("audit buffer is full")
)

// deliverySink persists batches of delivery records.
type deliverySink interface {
	SaveDeliveries(ctx context.Context, records []database.DeliveryRecord) error
}

// DeliveryAuditor batches delivery records and flushes them to ClickHouse.
// The audit log is best-effort: enqueueing never blocks the forwarding
// path and records are dropped when the buffer is full.
type DeliveryAuditor struct {
	recordChan    chan database.DeliveryRecord
	batchSize     int
	flushInterval time.Duration
	sink          deliverySink
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	mu            sync.Mutex
	isRunning     bool
	currentBatch  []database.DeliveryRecord
}

// NewDeliveryAuditor creates a new DeliveryAuditor instance
func NewDeliveryAuditor(
	capacity int,
	batchSize int,
	flushIntervalSeconds int,
	sink deliverySink,
) *DeliveryAuditor {
	ctx, cancel := context.WithCancel(context.Background())
	return &DeliveryAuditor{
		recordChan:    make(chan database.DeliveryRecord, capacity),
		batchSize:     batchSize,
		flushInterval: time.Duration(flushIntervalSeconds) * time.Second,
		sink:          sink,
		ctx:           ctx,
		cancel:        cancel,
		currentBatch:  make([]database.DeliveryRecord, 0, batchSize),
	}
}

// Start launches the background worker goroutine that flushes records
func (a *DeliveryAuditor) Start() {
	a.mu.Lock()
	if a.isRunning {
		a.mu.Unlock()
		return
	}
	a.isRunning = true
	a.mu.Unlock()

	a.wg.Add(1)
	go a.worker()
	log.Println("DeliveryAuditor started")
}

// Enqueue adds a delivery record to the buffer channel (non-blocking)
// Returns ErrAuditBufferFull if the channel is full
func (a *DeliveryAuditor) Enqueue(record database.DeliveryRecord) error {
	select {
	case a.recordChan <- record:
		return nil
	default:
		return ErrAuditBufferFull
	}
}

// worker is the background goroutine that collects records and flushes them
func (a *DeliveryAuditor) worker() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			// Flush remaining records before shutting down
			a.flushRemaining()
			return

		case record := <-a.recordChan:
			a.mu.Lock()
			a.currentBatch = append(a.currentBatch, record)
			shouldFlush := len(a.currentBatch) >= a.batchSize
			a.mu.Unlock()

			if shouldFlush {
				a.flushBatch()
			}

		case <-ticker.C:
			// Time-based flush
			a.mu.Lock()
			hasRecords := len(a.currentBatch) > 0
			a.mu.Unlock()

			if hasRecords {
				a.flushBatch()
			}
		}
	}
}

// flushBatch flushes the current batch to ClickHouse
func (a *DeliveryAuditor) flushBatch() {
	a.mu.Lock()
	if len(a.currentBatch) == 0 {
		a.mu.Unlock()
		return
	}

	// Copy batch and clear current batch
	batch := make([]database.DeliveryRecord, len(a.currentBatch))
	copy(batch, a.currentBatch)
	a.currentBatch = a.currentBatch[:0]
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.sink.SaveDeliveries(ctx, batch); err != nil {
		log.Printf("DeliveryAuditor: Failed to flush batch of %d records: %v", len(batch), err)
		return
	}

	log.Printf("DeliveryAuditor: Flushed batch of %d delivery records", len(batch))
}

// flushRemaining flushes any remaining records in the buffer during shutdown
func (a *DeliveryAuditor) flushRemaining() {
	a.mu.Lock()
	remaining := len(a.currentBatch)
	a.mu.Unlock()

	if remaining > 0 {
		log.Printf("DeliveryAuditor: Flushing %d remaining records during shutdown", remaining)
		a.flushBatch()
	}

	// Drain any remaining records from the channel
	drained := 0
	for {
		select {
		case record := <-a.recordChan:
			a.mu.Lock()
			a.currentBatch = append(a.currentBatch, record)
			a.mu.Unlock()
			drained++
		default:
			if drained > 0 {
				log.Printf("DeliveryAuditor: Drained %d records from channel during shutdown", drained)
				a.flushBatch()
			}
			return
		}
	}
}

// Shutdown gracefully shuts down the auditor, flushing remaining records
func (a *DeliveryAuditor) Shutdown() error {
	a.mu.Lock()
	if !a.isRunning {
		a.mu.Unlock()
		return nil
	}
	a.mu.Unlock()

	log.Println("DeliveryAuditor: Initiating graceful shutdown...")
	a.cancel()
	a.wg.Wait()
	log.Println("DeliveryAuditor: Shutdown complete")
	return nil
}

// GetBufferSize returns the current number of records in the buffer channel
func (a *DeliveryAuditor) GetBufferSize() int {
	return len(a.recordChan)
}
