package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/czdsgnr/roubenky/models"
	"github.com/czdsgnr/roubenky/storage"
)

// Snapshot is a full point-in-time copy of the reservations that can block
// calendar days: non-cancelled with a check-out today or later.
type Snapshot []models.Reservation

type subscriber struct {
	onSnapshot func(Snapshot)
	onError    func(error)
}

// ReservationFeed keeps a live snapshot of the blocking reservation set.
// Writers publish on the Redis reservations channel after every create or
// status change; the feed reloads from Postgres on each message and fans
// the fresh snapshot out, so staleness is bounded only by Redis propagation.
type ReservationFeed struct {
	mu      sync.RWMutex
	started bool
	current Snapshot
	subs    map[int]subscriber
	nextID  int
}

// Feed is the process-wide reservation feed.
var Feed = NewReservationFeed()

func NewReservationFeed() *ReservationFeed {
	return &ReservationFeed{subs: map[int]subscriber{}}
}

// Current returns the latest snapshot and whether the feed has loaded one.
func (f *ReservationFeed) Current() (Snapshot, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current, f.started
}

// Subscribe registers callbacks for future snapshots and load errors and
// returns an unsubscribe func. The current snapshot, if any, is delivered
// immediately.
func (f *ReservationFeed) Subscribe(onSnapshot func(Snapshot), onError func(error)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = subscriber{onSnapshot: onSnapshot, onError: onError}
	current, started := f.current, f.started
	f.mu.Unlock()

	if started && onSnapshot != nil {
		onSnapshot(current)
	}

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Replace installs a snapshot and fans it out to subscribers.
func (f *ReservationFeed) Replace(s Snapshot) {
	f.mu.Lock()
	f.current = s
	f.started = true
	subs := make([]subscriber, 0, len(f.subs))
	for _, sub := range f.subs {
		subs = append(subs, sub)
	}
	f.mu.Unlock()

	for _, sub := range subs {
		if sub.onSnapshot != nil {
			sub.onSnapshot(s)
		}
	}
}

func (f *ReservationFeed) fail(err error) {
	f.mu.RLock()
	subs := make([]subscriber, 0, len(f.subs))
	for _, sub := range f.subs {
		subs = append(subs, sub)
	}
	f.mu.RUnlock()

	for _, sub := range subs {
		if sub.onError != nil {
			sub.onError(err)
		}
	}
}

// Reload queries the blocking reservation set and installs it.
func (f *ReservationFeed) Reload() error {
	reservations, err := loadBlockingReservations()
	if err != nil {
		f.fail(err)
		return err
	}
	f.Replace(reservations)
	return nil
}

// Start loads the initial snapshot and then follows the Redis channel until
// the context is cancelled. Errors degrade the calendar, never crash it.
func (f *ReservationFeed) Start(ctx context.Context) {
	if err := f.Reload(); err != nil {
		log.Println("⚠️  Reservation feed initial load failed:", err)
	}

	pubsub := storage.Redis.Subscribe(ctx, storage.ReservationsChannel)
	messages := pubsub.Channel()

	go func() {
		defer pubsub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				if err := f.Reload(); err != nil {
					log.Println("⚠️  Reservation feed reload failed:", err)
					continue
				}
				log.Println("🔄 Reservation snapshot refreshed:", msg.Payload)
			}
		}
	}()
}

func loadBlockingReservations() ([]models.Reservation, error) {
	today := Midnight(time.Now())
	var reservations []models.Reservation
	err := storage.DB.
		Where("status <> ? AND check_out >= ?", models.ReservationCancelled, today).
		Order("check_in ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// CurrentReservations is what the calendar endpoints read. With the feed
// running it is the live snapshot; otherwise it reads through to the
// database, and on failure degrades to an empty set with a logged
// diagnostic rather than an error page.
func CurrentReservations() []models.Reservation {
	if snapshot, ok := Feed.Current(); ok {
		return snapshot
	}
	reservations, err := loadBlockingReservations()
	if err != nil {
		log.Println("⚠️  Failed to load reservations, calendar degrades to empty:", err)
		return nil
	}
	return reservations
}
