package watch

import (
	"context"
	"log"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"parking-zone-gateway/config"
	"parking-zone-gateway/internal/notification"
	"parking-zone-gateway/internal/store"
	"parking-zone-gateway/internal/upstream"
)

// Service polls the backend's slot feed and records state transitions so
// watchers can be notified when a slot frees up. It authenticates with the
// configured service token, never with a user's session.
type Service struct {
	cfg        *config.Config
	client     *upstream.Client
	store      store.Store
	workerPool *notification.WorkerPool
}

// NewService creates and initializes a new watch service.
func NewService(cfg *config.Config, client *upstream.Client, st store.Store) *Service {
	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	workerPool := notification.NewWorkerPool(cfg.WorkerPool.Size, st.DB(), &webpushOptions)

	return &Service{
		cfg:        cfg,
		client:     client,
		store:      st,
		workerPool: workerPool,
	}
}

// Run starts the polling loop.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Watch.Enabled {
		log.Println("Slot watcher is disabled. Not starting.")
		return
	}
	log.Println("Starting slot watcher...")

	s.workerPool.Start(ctx)

	s.PollOnce(ctx)

	timer := time.NewTimer(s.cfg.Watch.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Slot watcher shutting down.")
			return
		case <-timer.C:
			s.PollOnce(ctx)
			timer.Reset(s.cfg.Watch.Interval)
		}
	}
}

// PollOnce performs a single snapshot of the slot feed and persists the
// state changes.
func (s *Service) PollOnce(ctx context.Context) {
	log.Println("Executing watch cycle...")
	now := time.Now().UTC()

	slots, err := s.client.ListSlots(ctx, s.cfg.Upstream.ServiceToken)
	if err != nil {
		// Keep the last known state rather than treating every slot as gone.
		log.Printf("Watch cycle aborted, slot feed unavailable: %v", err)
		return
	}

	if len(slots) == 0 {
		log.Println("Watch cycle: feed returned no slots.")
		// Still processed below so lingering open states get archived.
	}

	if err := s.store.UpsertBlocksAndSlots(ctx, slots); err != nil {
		log.Printf("Error processing blocks and slots: %v", err)
		return
	}

	becameAvailable, err := s.store.UpdateSlotStates(ctx, now, slots)
	if err != nil {
		log.Printf("Error processing slot state changes: %v", err)
	}

	if len(becameAvailable) > 0 {
		log.Printf("Dispatching notifications for %d slots", len(becameAvailable))
		for _, slotID := range becameAvailable {
			s.workerPool.Dispatch(slotID)
		}
	}

	log.Println("Watch cycle finished.")
}
