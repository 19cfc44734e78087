package dataset

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Store owns the current dataset snapshot. The first read lazily loads the
// configured directory; subsequent reloads swap in a complete new snapshot
// atomically. Readers always see a whole snapshot, never a torn one.
type Store struct {
	dir string
	log zerolog.Logger

	cur    atomic.Pointer[Snapshot]
	loadMu sync.Mutex
}

// NewStore returns a Store that lazily loads dir on first access.
func NewStore(dir string, log zerolog.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// Current returns the live snapshot, loading the data directory on first
// call. A failed initial load yields an empty snapshot; every engine
// degrades to empty output over it.
func (st *Store) Current() *Snapshot {
	if s := st.cur.Load(); s != nil {
		return s
	}

	st.loadMu.Lock()
	defer st.loadMu.Unlock()
	if s := st.cur.Load(); s != nil {
		return s
	}

	s, err := LoadDirectory(st.dir)
	if err != nil {
		st.log.Warn().Err(err).Str("dir", st.dir).Msg("initial dataset load failed, starting empty")
		s = Empty()
	} else {
		st.log.Info().
			Str("dir", st.dir).
			Str("snapshot_id", s.ID.String()).
			Int("accounts", len(s.Accounts)).
			Int("payments", len(s.Payments)).
			Int("refunds", len(s.Refunds)).
			Int("chargebacks", len(s.Chargebacks)).
			Int("audit_entries", len(s.AuditLog)).
			Msg("dataset loaded")
	}
	st.cur.Store(s)
	return s
}

// Swap atomically replaces the current snapshot.
func (st *Store) Swap(s *Snapshot) {
	st.cur.Store(s)
}
