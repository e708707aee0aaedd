package audit

import (
	"context"
	"time"

	"custodian/internal/repository"

	"go.uber.org/zap"
)

const (
	ActionMnemonicCreated      = "MNEMONIC_CREATED"
	ActionAddressDerived       = "ADDRESS_DERIVED"
	ActionKeyExported          = "PRIVATE_KEY_EXPORTED"
	ActionKeyExportDenied      = "PRIVATE_KEY_EXPORT_DENIED"
	ActionKeyExportRateLimited = "PRIVATE_KEY_EXPORT_RATE_LIMITED"
	ActionSettled              = "LEDGER_SETTLED"

	writeTimeout = 5 * time.Second
)

type Entry struct {
	PrincipalID string
	Action      string
	EntityID    string
	Metadata    map[string]any
	Timestamp   time.Time
}

// Recorder is a fire-and-forget audit sink. Producers never wait on storage;
// a single Run loop persists entries and reports failures to the log only.
type Recorder struct {
	logs  *zap.SugaredLogger
	store Store
	queue chan Entry
	now   func() time.Time
}

func NewRecorder(logger *zap.SugaredLogger, store Store, size int) *Recorder {
	if size < 1 {
		size = 1
	}
	return &Recorder{
		logs:  logger,
		store: store,
		queue: make(chan Entry, size),
		now:   time.Now,
	}
}

// Record enqueues entry without blocking. When the queue is full the entry is
// dropped with a warning.
func (r *Recorder) Record(_ context.Context, entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.now().UTC()
	}

	select {
	case r.queue <- entry:
	default:
		r.logs.Warnw("audit queue full, entry dropped",
			"action", entry.Action,
			"principal_id", entry.PrincipalID,
			"entity_id", entry.EntityID)
	}
}

// Run persists queued entries until ctx is done, then drains what is left.
func (r *Recorder) Run(ctx context.Context) {
	for {
		select {
		case entry := <-r.queue:
			r.write(ctx, entry)
		case <-ctx.Done():
			r.drain()
			return
		}
	}
}

func (r *Recorder) drain() {
	for {
		select {
		case entry := <-r.queue:
			r.write(context.Background(), entry)
		default:
			return
		}
	}
}

func (r *Recorder) write(ctx context.Context, entry Entry) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	err := r.store.SaveAuditLog(ctx, repository.AuditLog{
		PrincipalID: entry.PrincipalID,
		Action:      entry.Action,
		EntityID:    entry.EntityID,
		Metadata:    entry.Metadata,
		CreatedAt:   entry.Timestamp,
	})
	if err != nil {
		r.logs.Errorw("failed to persist audit entry",
			"error", err,
			"action", entry.Action,
			"principal_id", entry.PrincipalID,
			"entity_id", entry.EntityID)
	}
}
