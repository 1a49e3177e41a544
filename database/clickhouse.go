package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"capi/forwarder/config"

	"github.com/uptrace/go-clickhouse/ch"
)

var clickHouseDB *ch.DB

// ErrClickHouseNotInitialized is returned by health checks when the
// ClickHouse sink was never initialized (disabled or failed startup).
var ErrClickHouseNotInitialized = fmt.Errorf("ClickHouse connection is not initialized")

// InitClickHouse initializes the ClickHouse database connection
func InitClickHouse(cfg *config.ClickHouseConfig) error {
	dsn := cfg.GetClickHouseDSN()

	// Connect without TLS since ClickHouse native protocol doesn't use TLS by default
	db := ch.Connect(
		ch.WithDSN(dsn),
		ch.WithInsecure(true),
	)

	ctx := context.Background()
	if err := InitDeliveryLogTable(ctx, db); err != nil {
		return fmt.Errorf("failed to initialize delivery_log table: %w", err)
	}

	clickHouseDB = db
	log.Println("ClickHouse connection established successfully")

	return nil
}

// CloseClickHouse closes the ClickHouse database connection
func CloseClickHouse() error {
	if clickHouseDB != nil {
		if err := clickHouseDB.Close(); err != nil {
			return fmt.Errorf("failed to close ClickHouse connection: %w", err)
		}
		log.Println("ClickHouse connection closed")
	}
	return nil
}

// InitDeliveryLogTable creates the delivery_log table if it doesn't exist
func InitDeliveryLogTable(ctx context.Context, db *ch.DB) error {
	_, err := db.NewCreateTable().
		Model((*DeliveryRecord)(nil)).
		Engine("MergeTree()").
		Order("delivered_at, event_name").
		IfNotExists().
		Exec(ctx)

	return err
}

// ClickHouseHealthCheck verifies that the ClickHouse connection is alive
func ClickHouseHealthCheck(ctx context.Context) error {
	if clickHouseDB == nil {
		return ErrClickHouseNotInitialized
	}
	return clickHouseDB.Ping(ctx)
}

// GetClickHouseDB returns the ClickHouse database instance
func GetClickHouseDB() ClickHouseDB {
	return ClickHouseDB{clickHouseDB}
}

// DeliveryRecord is one row of the delivery audit log
type DeliveryRecord struct {
	ch.CHModel  `ch:"table:delivery_log,partition:toYYYYMMDD(delivered_at)"`
	ID          string    `ch:"id"`
	EventName   string    `ch:"event_name,lc"`
	EventID     string    `ch:"event_id"`
	PixelID     string    `ch:"pixel_id,lc"`
	StatusCode  int32     `ch:"status_code"`
	Success     uint8     `ch:"success"`
	TestEvent   uint8     `ch:"test_event"`
	DurationMs  int64     `ch:"duration_ms"`
	DeliveredAt time.Time `ch:"delivered_at"`
}

// DeliveryRecordColumnar: delivery records in columnar format for batch inserts
type DeliveryRecordColumnar struct {
	ch.CHModel  `ch:"table:delivery_log,partition:toYYYYMMDD(delivered_at),columnar"`
	ID          []string    `ch:"id"`
	EventName   []string    `ch:"event_name,lc"`
	EventID     []string    `ch:"event_id"`
	PixelID     []string    `ch:"pixel_id,lc"`
	StatusCode  []int32     `ch:"status_code"`
	Success     []uint8     `ch:"success"`
	TestEvent   []uint8     `ch:"test_event"`
	DurationMs  []int64     `ch:"duration_ms"`
	DeliveredAt []time.Time `ch:"delivered_at"`
}

// SaveDeliveries saves a batch of delivery records using the native
// columnar insert format
func (c ClickHouseDB) SaveDeliveries(ctx context.Context, records []DeliveryRecord) error {
	if c.DB == nil {
		return fmt.Errorf("database connection is nil")
	}

	if len(records) == 0 {
		return fmt.Errorf("no delivery records to insert")
	}

	batchSize := len(records)

	ids := make([]string, 0, batchSize)
	eventNames := make([]string, 0, batchSize)
	eventIDs := make([]string, 0, batchSize)
	pixelIDs := make([]string, 0, batchSize)
	statusCodes := make([]int32, 0, batchSize)
	successes := make([]uint8, 0, batchSize)
	testEvents := make([]uint8, 0, batchSize)
	durations := make([]int64, 0, batchSize)
	deliveredAts := make([]time.Time, 0, batchSize)

	for _, record := range records {
		ids = append(ids, record.ID)
		eventNames = append(eventNames, record.EventName)
		eventIDs = append(eventIDs, record.EventID)
		pixelIDs = append(pixelIDs, record.PixelID)
		statusCodes = append(statusCodes, record.StatusCode)
		successes = append(successes, record.Success)
		testEvents = append(testEvents, record.TestEvent)
		durations = append(durations, record.DurationMs)
		deliveredAts = append(deliveredAts, record.DeliveredAt)
	}

	columnarModel := &DeliveryRecordColumnar{
		ID:          ids,
		EventName:   eventNames,
		EventID:     eventIDs,
		PixelID:     pixelIDs,
		StatusCode:  statusCodes,
		Success:     successes,
		TestEvent:   testEvents,
		DurationMs:  durations,
		DeliveredAt: deliveredAts,
	}

	_, err := c.DB.NewInsert().
		Model(columnarModel).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to columnar insert delivery records: %w", err)
	}

	return nil
}

type ClickHouseDB struct {
	*ch.DB
}
